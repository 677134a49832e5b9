// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// GenerateAnswers holds the values collected by RunGenerateForm.
type GenerateAnswers struct {
	Files           []string
	Mode            string
	Enums           string
	RemoveNamespace bool
}

// RunGenerateForm asks for the generation options. Fields already set in
// answers are used as the initial values; the file prompt is skipped when
// files were given on the command line.
func RunGenerateForm(answers *GenerateAnswers, modes []string) error {
	files := strings.Join(answers.Files, ", ")
	askFiles := len(answers.Files) == 0

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema files or directories").
				Description("Comma-separated").
				Placeholder("schemas").
				Validate(listValidator("at least one path")).
				Value(&files),
		).WithHideFunc(func() bool { return !askFiles }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output").
				Options(modeOptions(modes)...).
				Value(&answers.Mode),
			huh.NewSelect[string]().
				Title("Enums").
				Options(enumOptions()...).
				Value(&answers.Enums),
			huh.NewConfirm().
				Title("Remove namespaces?").
				Affirmative("Yes").
				Negative("No").
				Value(&answers.RemoveNamespace),
		),
	).WithTheme(Theme()).Run()
	if err != nil {
		return err
	}

	answers.Files = SplitList(files)
	return nil
}
