// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/avrots/internal/commands"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/dacolabs/avrots/internal/translate/classes"
	"github.com/dacolabs/avrots/internal/translate/interfaces"
)

// Translators returns every translator shipped with the CLI.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&interfaces.Translator{})
	translators.Add(&classes.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(Translators())
	return rootCmd.ExecuteContext(ctx)
}
