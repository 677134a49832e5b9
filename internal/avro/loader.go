// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// SchemaExtension is the file extension of Avro schema documents.
const SchemaExtension = ".avsc"

// Document is a loaded schema file.
type Document struct {
	Path   string
	Raw    []byte
	Schema Type
}

// Loader discovers and loads schema files from a filesystem.
type Loader struct {
	fsys afero.Fs
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fsys: fsys}
}

// Discover expands paths into schema files. Files are kept as given. Directories
// are walked recursively in lexical order and contribute the files with the
// schema extension. The order of paths is preserved.
func (l *Loader) Discover(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := l.fsys.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &InputNotFoundError{Path: p}
			}
			return nil, errors.Wrapf(err, "stat %s", p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = afero.Walk(l.fsys, p, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(path) == SchemaExtension {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", p)
		}
	}
	return files, nil
}

// Load reads and parses one schema file.
func (l *Loader) Load(path string) (*Document, error) {
	data, err := afero.ReadFile(l.fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &InputNotFoundError{Path: path}
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}
	schema, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &Document{Path: path, Raw: data, Schema: schema}, nil
}
