// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project configuration loading for CLI commands.
package session

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/config"
	"github.com/spf13/cobra"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigFlag is the name of the flag selecting an explicit config file.
const ConfigFlag = "config"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration in effect for a command.
type Context struct {
	// Config is the loaded configuration, or the zero-valued defaults when no
	// file was found.
	Config *config.Config

	// Path is the file Config was read from, empty when none was found.
	Path string
}

// Load loads the project configuration and returns a new context.Context with
// the session Context stored in it.
//
// When path is empty, .avrots.yaml or else .avrots.toml in the current directory
// is used if it exists. An explicit path must exist.
func Load(ctx context.Context, path string) (context.Context, error) {
	if path == "" {
		found, err := findProjectConfig()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return context.WithValue(ctx, contextKey{}, &Context{Config: &config.Config{Version: config.CurrentConfigVersion}}), nil
		}
		path = found
	} else if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "invalid configuration in %s", path), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "invalid configuration in %s", path), ErrInvalidConfig)
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg, Path: path}), nil
}

// findProjectConfig returns the first project configuration file present in
// the current directory, or the empty string when there is none.
func findProjectConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current directory")
	}
	for _, name := range config.FileNames {
		candidate := filepath.Join(cwd, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	if cmd.Context() == nil {
		return nil
	}
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	sess := FromCommand(cmd)
	if sess == nil {
		return nil, errors.New("project configuration not loaded")
	}
	return sess, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the project
// configuration named by the --config flag, if any, into the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	var path string
	if f := cmd.Flags().Lookup(ConfigFlag); f != nil {
		path = f.Value.String()
	}
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, err := Load(parent, path)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
