// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/avrots/internal/session"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
// The root command itself generates TypeScript from the given schemas.
func NewRootCmd(translators translate.Register) *cobra.Command {
	opts := newGenerateOptions()

	rootCmd := &cobra.Command{
		Use:   "avrots",
		Short: "Generate TypeScript from Avro schemas",
		Long: `Generate TypeScript enums, interfaces, and optionally classes with
serialize/deserialize helpers from Avro schema files (.avsc).

Options are read from flags, then AVROTS_* environment variables, then the
project configuration file (.avrots.yaml).`,
		Example: `  # Print interfaces for one schema
  avrots -f schemas/user.avsc

  # Generate classes for every schema under a directory into src/generated
  avrots -x -f schemas -o src/generated

  # Enum strategy and flat output
  avrots -f schemas --enums CONST_ENUM -r

  # Regenerate on change
  avrots -f schemas -o src/generated --watch`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE:       session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	if err := opts.bind(rootCmd); err != nil {
		panic(err)
	}
	registerInitCmd(rootCmd)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}
