// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dacolabs/avrots/internal/translate"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label  string
	Value  string
	Failed bool
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
// Failed fields get a red cross.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f56"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")
	cross := failure.Render("✗")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		mark := check
		if f.Failed {
			mark = cross
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", mark, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, success.Render("\n"+successMsg))
	}
}

// SplitList splits a comma-separated input into trimmed, non-empty items.
func SplitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func enumOptions() []huh.Option[string] {
	labels := map[translate.EnumVariant]string{
		translate.EnumVariantEnum:      "enum (export enum E)",
		translate.EnumVariantConstEnum: "const enum (export const enum E)",
		translate.EnumVariantString:    "string union (export type E = 'A' | 'B')",
	}
	options := make([]huh.Option[string], len(translate.EnumVariants))
	for i, v := range translate.EnumVariants {
		options[i] = huh.NewOption(labels[v], string(v))
	}
	return options
}

func modeOptions(modes []string) []huh.Option[string] {
	options := make([]huh.Option[string], len(modes))
	for i, m := range modes {
		options[i] = huh.NewOption(m, m)
	}
	return options
}

func listValidator(field string) func(string) error {
	return func(s string) error {
		if len(SplitList(s)) == 0 {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

