// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles the avrots project configuration file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Project configuration file names.
const (
	FileName     = ".avrots.yaml"
	TOMLFileName = ".avrots.toml"
)

// FileNames lists the project configuration files in lookup order.
var FileNames = []string{FileName, TOMLFileName}

// ErrUnsupportedVersion indicates a config file written for another format version.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the project configuration file, .avrots.yaml or .avrots.toml.
// Every field can be overridden by an AVROTS_* environment variable or a flag.
type Config struct {
	Version           int      `yaml:"version" toml:"version"`
	Files             []string `yaml:"files,omitempty" toml:"files,omitempty"`
	ConvertEnumToType bool     `yaml:"convertEnumToType,omitempty" toml:"convertEnumToType,omitempty"`
	RemoveNameSpace   bool     `yaml:"removeNameSpace,omitempty" toml:"removeNameSpace,omitempty"`
	Enums             string   `yaml:"enums,omitempty" toml:"enums,omitempty"`
	CustomMode        bool     `yaml:"customMode,omitempty" toml:"customMode,omitempty"`
	Strict            bool     `yaml:"strict,omitempty" toml:"strict,omitempty"`
	KeepGoing         bool     `yaml:"keepGoing,omitempty" toml:"keepGoing,omitempty"`
	Jobs              int      `yaml:"jobs,omitempty" toml:"jobs,omitempty"`
	OutDir            string   `yaml:"outDir,omitempty" toml:"outDir,omitempty"`
}

// Default returns the configuration written by avrots init.
func Default() Config {
	return Config{
		Version: CurrentConfigVersion,
		Files:   []string{"schemas"},
		Enums:   string(translate.EnumVariantEnum),
	}
}

// IsTOML reports whether path names a TOML configuration file.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a Config from a file path. Files ending in .toml are decoded as
// TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if IsTOML(path) {
		err = toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg)
	} else {
		err = yaml.NewDecoder(f).Decode(&cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return &cfg, nil
}

// Save writes the Config to a file path in the format its extension selects.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if IsTOML(path) {
		return toml.NewEncoder(f).Encode(c)
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.WithHintf(ErrUnsupportedVersion, "set version: %d", CurrentConfigVersion)
	}
	if _, err := translate.ParseEnumVariant(c.Enums); err != nil {
		return err
	}
	if c.Jobs < 0 {
		return errors.Newf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}
