// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package runner drives generation for a batch of schema documents:
// discovery, loading, optional strict validation, translation, and output.
package runner

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoInput is returned when no input path was given.
var ErrNoInput = errors.New("no input files")

// Options control a batch run.
type Options struct {
	Generate  translate.Options
	Strict    bool   // validate every document against the Avro specification first
	KeepGoing bool   // skip failing documents instead of aborting the batch
	Jobs      int    // parallel workers, runtime.NumCPU() when zero or negative
	OutDir    string // write one file per document here instead of to the output writer
}

// Result is the outcome of one document.
type Result struct {
	Path   string // input schema path
	Target string // output file, empty when written to the output writer
	Bytes  int
	Err    error
}

// Summary describes a finished run.
type Summary struct {
	Results  []Result
	Duration time.Duration
}

// Generated returns the number of documents written.
func (s *Summary) Generated() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error.
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Runner generates TypeScript for schema documents read from a filesystem.
type Runner struct {
	fsys       afero.Fs
	loader     *avro.Loader
	translator translate.Translator
	out        io.Writer
	logger     *zap.Logger
	opts       Options
}

// New creates a Runner. Generated code is written to out unless opts.OutDir is set.
func New(fsys afero.Fs, translator translate.Translator, out io.Writer, logger *zap.Logger, opts Options) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		fsys:       fsys,
		loader:     avro.NewLoader(fsys),
		translator: translator,
		out:        out,
		logger:     logger,
		opts:       opts,
	}
}

// Run generates every schema file found under paths.
//
// Documents are translated in parallel and written in discovery order. By
// default the first failing document aborts the run before anything is
// written. With KeepGoing every successful document is written and the
// returned error counts the failures.
func (r *Runner) Run(ctx context.Context, paths []string) (*Summary, error) {
	start := time.Now()
	if len(paths) == 0 {
		return nil, errors.WithHint(ErrNoInput, "pass --file or set files in .avrots.yaml")
	}

	files, err := r.loader.Discover(paths)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("discovered schema files", zap.Int("count", len(files)), zap.Strings("paths", paths))
	if len(files) == 0 {
		r.logger.Warn("no schema files found", zap.Strings("paths", paths))
	}

	targets, err := r.targets(files)
	if err != nil {
		return nil, err
	}

	outputs := make([][]byte, len(files))
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs())
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := r.generate(file)
			results[i] = Result{Path: file, Target: targets[i], Bytes: len(out), Err: err}
			outputs[i] = out
			if err != nil && !r.opts.KeepGoing {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, res := range results {
		if res.Err != nil {
			r.logger.Error("generation failed", zap.String("file", res.Path), zap.Error(res.Err))
			continue
		}
		if err := r.write(res, outputs[i]); err != nil {
			return nil, err
		}
		r.logger.Info("generated", zap.String("file", res.Path), zap.String("target", res.Target), zap.Int("bytes", res.Bytes))
	}

	summary := &Summary{Results: results, Duration: time.Since(start)}
	if failed := len(summary.Failed()); failed > 0 {
		return summary, errors.Newf("%d of %d documents failed", failed, len(results))
	}
	return summary, nil
}

func (r *Runner) jobs() int {
	if r.opts.Jobs > 0 {
		return r.opts.Jobs
	}
	return runtime.NumCPU()
}

// generate translates one document into its output block.
func (r *Runner) generate(path string) ([]byte, error) {
	doc, err := r.loader.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if r.opts.Strict {
		if err := avro.Validate(doc.Raw); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
	}
	content, err := r.translator.Translate(doc.Schema, r.opts.Generate)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return []byte(fmt.Sprintf("// Generated from %s\n\n%s\n", filepath.Base(path), content)), nil
}

// targets maps every input to its output file when writing to a directory.
func (r *Runner) targets(files []string) ([]string, error) {
	targets := make([]string, len(files))
	if r.opts.OutDir == "" {
		return targets, nil
	}
	owners := make(map[string]string, len(files))
	for i, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		target := filepath.Join(r.opts.OutDir, base+r.translator.FileExtension())
		if prev, ok := owners[target]; ok {
			return nil, errors.WithHint(
				errors.Newf("%s and %s would both be written to %s", prev, file, target),
				"rename one of the schema files or generate them separately")
		}
		owners[target] = file
		targets[i] = target
	}
	return targets, nil
}

func (r *Runner) write(res Result, content []byte) error {
	if res.Target == "" {
		if _, err := r.out.Write(content); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
		return nil
	}
	if err := r.fsys.MkdirAll(filepath.Dir(res.Target), 0o750); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	if err := afero.WriteFile(r.fsys, res.Target, content, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", res.Target)
	}
	return nil
}
