// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/avrots/internal/config"
)

// RunInitForm runs the interactive form for the init command.
// It fills cfg with user input, starting from its current values.
func RunInitForm(cfg *config.Config) error {
	files := strings.Join(cfg.Files, ", ")

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema files or directories").
				Description("Comma-separated").
				Placeholder("schemas").
				Validate(listValidator("at least one path")).
				Value(&files),
			huh.NewInput().
				Title("Output directory").
				Description("Leave empty to print to stdout").
				Placeholder("src/generated").
				Value(&cfg.OutDir),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate classes with serialize and deserialize?").
				Value(&cfg.CustomMode),
			huh.NewSelect[string]().
				Title("Enums").
				Options(enumOptions()...).
				Value(&cfg.Enums),
			huh.NewConfirm().
				Title("Remove namespaces?").
				Value(&cfg.RemoveNameSpace),
			huh.NewConfirm().
				Title("Validate schemas strictly?").
				Value(&cfg.Strict),
		),
	).WithTheme(Theme()).Run()
	if err != nil {
		return err
	}

	cfg.Files = SplitList(files)
	return nil
}
