// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/config"
	"github.com/dacolabs/avrots/internal/prompts"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	files          []string
	outDir         string
	enums          string
	customMode     bool
	removeNS       bool
	strict         bool
	format         string
	force          bool
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an avrots project",
		Long: `Initialize an avrots project with a ` + config.FileName + ` (or ` + config.TOMLFileName + `)
configuration file in the current directory.`,
		Example: `  # Interactive mode
  avrots init

  # Non-interactive
  avrots init --non-interactive -f schemas -o src/generated --custom-mode
  avrots init --non-interactive --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil, "Schema file or directory (repeatable, default: schemas)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Output directory for generated files")
	cmd.Flags().StringVar(&opts.enums, "enums", string(translate.EnumVariantEnum), "Enum style (ENUM, CONST_ENUM, STRING)")
	cmd.Flags().BoolVarP(&opts.customMode, "custom-mode", "x", false, "Generate classes with serialize and deserialize")
	cmd.Flags().BoolVarP(&opts.removeNS, "remove-namespace", "r", false, "Emit every declaration at top level")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate schemas before generating")
	cmd.Flags().StringVar(&opts.format, "format", "yaml", "Config format (yaml or toml)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing "+config.FileName)
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get current directory")
	}

	var fileName string
	switch strings.ToLower(opts.format) {
	case "yaml", "yml":
		fileName = config.FileName
	case "toml":
		fileName = config.TOMLFileName
	default:
		return errors.WithHint(errors.Newf("unsupported config format %q", opts.format), "use yaml or toml")
	}

	path := filepath.Join(cwd, fileName)
	if !opts.force {
		for _, name := range config.FileNames {
			if _, err := os.Stat(filepath.Join(cwd, name)); err == nil {
				return errors.WithHint(
					errors.Newf("%s already exists; project already initialized", name),
					"pass --force to overwrite it")
			}
		}
	}

	cfg := config.Default()
	if len(opts.files) > 0 {
		cfg.Files = opts.files
	}
	cfg.OutDir = opts.outDir
	cfg.Enums = strings.ToUpper(opts.enums)
	cfg.CustomMode = opts.customMode
	cfg.RemoveNameSpace = opts.removeNS
	cfg.Strict = opts.strict

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if err := cfg.Save(path); err != nil {
		return errors.Wrapf(err, "failed to write %s", fileName)
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "stdout"
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: fileName},
		{Label: "Files", Value: strings.Join(cfg.Files, ", ")},
		{Label: "Output", Value: outDir},
	}, "Initialization completed")
	return nil
}
