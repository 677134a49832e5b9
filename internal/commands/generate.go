// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/config"
	"github.com/dacolabs/avrots/internal/logging"
	"github.com/dacolabs/avrots/internal/prompts"
	"github.com/dacolabs/avrots/internal/runner"
	"github.com/dacolabs/avrots/internal/session"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/dacolabs/avrots/internal/translate/classes"
	"github.com/dacolabs/avrots/internal/translate/interfaces"
	"github.com/dacolabs/avrots/internal/watch"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "AVROTS"

// Flag names, also used as viper keys.
const (
	flagFile              = "file"
	flagConvertEnumToType = "convert-enum-to-type"
	flagRemoveNamespace   = "remove-namespace"
	flagCustomMode        = "custom-mode"
	flagEnums             = "enums"
	flagStrict            = "strict"
	flagKeepGoing         = "keep-going"
	flagJobs              = "jobs"
	flagOutDir            = "out-dir"
	flagWatch             = "watch"
	flagInteractive       = "interactive"
	flagVerbose           = "verbose"
	flagLogJSON           = "log-json"
)

// flagAliases accepts the configuration file spelling of an option as a flag.
var flagAliases = map[string]string{
	"convertEnumToType": flagConvertEnumToType,
	"removeNameSpace":   flagRemoveNamespace,
	"customMode":        flagCustomMode,
	"keepGoing":         flagKeepGoing,
	"outDir":            flagOutDir,
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, ok := flagAliases[name]; ok {
		name = alias
	}
	return pflag.NormalizedName(name)
}

// generateOptions layers flags over AVROTS_* environment variables over the
// project configuration file.
type generateOptions struct {
	v *viper.Viper
}

// generateSettings are the resolved options of one invocation.
type generateSettings struct {
	files       []string
	mode        string
	generate    translate.Options
	strict      bool
	keepGoing   bool
	jobs        int
	outDir      string
	watch       bool
	interactive bool
	log         logging.Options
}

func newGenerateOptions() *generateOptions {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &generateOptions{v: v}
}

func (o *generateOptions) bind(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)
	flags.StringArrayP(flagFile, "f", nil, "Avro schema file or directory (repeatable)")
	flags.BoolP(flagConvertEnumToType, "c", false, "Emit enums as string literal unions")
	flags.BoolP(flagRemoveNamespace, "r", false, "Emit every declaration at top level instead of in namespaces")
	flags.BoolP(flagCustomMode, "x", false, "Emit classes with serialize and deserialize methods")
	flags.String(flagEnums, string(translate.EnumVariantEnum), "Enum style (ENUM, CONST_ENUM, STRING)")
	flags.Bool(flagStrict, false, "Validate schemas against the Avro specification before generating")
	flags.Bool(flagKeepGoing, false, "Skip failing schemas instead of aborting")
	flags.IntP(flagJobs, "j", 0, "Parallel workers (default: number of CPUs)")
	flags.StringP(flagOutDir, "o", "", "Write one .ts file per schema into this directory instead of stdout")
	flags.BoolP(flagWatch, "w", false, "Regenerate when schema files change")
	flags.BoolP(flagInteractive, "i", false, "Prompt for generation options")
	flags.CountP(flagVerbose, "v", "Increase log verbosity (-v, -vv)")
	flags.Bool(flagLogJSON, false, "Write logs as JSON")
	flags.String(session.ConfigFlag, "", "Project configuration file (default: ./"+config.FileName+")")

	return errors.Wrap(o.v.BindPFlags(flags), "failed to bind generate flags")
}

// applyConfig installs the configuration file values below flags and
// environment variables. Relative paths are resolved against the file's directory.
func (o *generateOptions) applyConfig(cfg *config.Config, path string) {
	dir := filepath.Dir(path)
	rel := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	if len(cfg.Files) > 0 {
		files := make([]string, len(cfg.Files))
		for i, f := range cfg.Files {
			files[i] = rel(f)
		}
		o.v.SetDefault(flagFile, files)
	}
	if cfg.OutDir != "" {
		o.v.SetDefault(flagOutDir, rel(cfg.OutDir))
	}
	if cfg.Enums != "" {
		o.v.SetDefault(flagEnums, cfg.Enums)
	}
	if cfg.Jobs > 0 {
		o.v.SetDefault(flagJobs, cfg.Jobs)
	}
	o.v.SetDefault(flagConvertEnumToType, cfg.ConvertEnumToType)
	o.v.SetDefault(flagRemoveNamespace, cfg.RemoveNameSpace)
	o.v.SetDefault(flagCustomMode, cfg.CustomMode)
	o.v.SetDefault(flagStrict, cfg.Strict)
	o.v.SetDefault(flagKeepGoing, cfg.KeepGoing)
}

func (o *generateOptions) settings(sess *session.Context) (*generateSettings, error) {
	if sess != nil && sess.Path != "" {
		o.applyConfig(sess.Config, sess.Path)
	}

	enums, err := translate.ParseEnumVariant(o.v.GetString(flagEnums))
	if err != nil {
		return nil, err
	}
	jobs := o.v.GetInt(flagJobs)
	if jobs < 0 {
		return nil, errors.Newf("--jobs must not be negative, got %d", jobs)
	}

	mode := interfaces.Name
	if o.v.GetBool(flagCustomMode) {
		mode = classes.Name
	}

	return &generateSettings{
		files: o.v.GetStringSlice(flagFile),
		mode:  mode,
		generate: translate.Options{
			Enums:             enums,
			ConvertEnumToType: o.v.GetBool(flagConvertEnumToType),
			RemoveNamespace:   o.v.GetBool(flagRemoveNamespace),
		},
		strict:      o.v.GetBool(flagStrict),
		keepGoing:   o.v.GetBool(flagKeepGoing),
		jobs:        jobs,
		outDir:      o.v.GetString(flagOutDir),
		watch:       o.v.GetBool(flagWatch),
		interactive: o.v.GetBool(flagInteractive),
		log: logging.Options{
			Verbosity: o.v.GetInt(flagVerbose),
			JSON:      o.v.GetBool(flagLogJSON),
		},
	}, nil
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	s, err := opts.settings(sess)
	if err != nil {
		return err
	}

	if s.interactive {
		if err := promptGenerate(s, translators); err != nil {
			return err
		}
	}

	translator, err := translators.Get(s.mode)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), s.log)
	defer func() { _ = logger.Sync() }()

	r := runner.New(afero.NewOsFs(), translator, cmd.OutOrStdout(), logger, runner.Options{
		Generate:  s.generate,
		Strict:    s.strict,
		KeepGoing: s.keepGoing,
		Jobs:      s.jobs,
		OutDir:    s.outDir,
	})

	generate := func(ctx context.Context) error {
		summary, err := r.Run(ctx, s.files)
		if summary != nil && s.outDir != "" {
			printSummary(cmd.ErrOrStderr(), summary)
		}
		return err
	}

	if !s.watch {
		return generate(cmd.Context())
	}
	if len(s.files) == 0 {
		return errors.WithHint(runner.ErrNoInput, "pass --file or set files in "+config.FileName)
	}
	logger.Info("watching for changes", zap.Strings("paths", s.files))
	return watch.New(s.files, generate, logger, watch.DefaultDebounce).Run(cmd.Context())
}

func promptGenerate(s *generateSettings, translators translate.Register) error {
	answers := prompts.GenerateAnswers{
		Files:           s.files,
		Mode:            s.mode,
		Enums:           string(s.generate.EnumStyle()),
		RemoveNamespace: s.generate.RemoveNamespace,
	}
	if err := prompts.RunGenerateForm(&answers, translators.Available()); err != nil {
		return err
	}

	enums, err := translate.ParseEnumVariant(answers.Enums)
	if err != nil {
		return err
	}
	s.files = answers.Files
	s.mode = answers.Mode
	s.generate.Enums = enums
	s.generate.ConvertEnumToType = false
	s.generate.RemoveNamespace = answers.RemoveNamespace
	return nil
}

func printSummary(w io.Writer, summary *runner.Summary) {
	fields := make([]prompts.ResultField, 0, len(summary.Results))
	for _, res := range summary.Results {
		if res.Err != nil {
			fields = append(fields, prompts.ResultField{Label: res.Path, Value: res.Err.Error(), Failed: true})
			continue
		}
		fields = append(fields, prompts.ResultField{Label: res.Path, Value: res.Target})
	}
	prompts.PrintResult(w, fields, fmt.Sprintf("Generated %d of %d file(s) in %s",
		summary.Generated(), len(summary.Results), summary.Duration.Round(time.Millisecond)))
}
