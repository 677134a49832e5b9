// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides the shared machinery for turning Avro schemas
// into TypeScript declarations: the generation context, type expressions,
// enum and interface rendering, union dispatch tables, and output assembly.
package translate

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
)

// Translator defines the interface all TypeScript generators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "interfaces", "classes")
	Name() string

	// Translate converts one schema document to TypeScript source.
	Translate(schema avro.Type, opts Options) ([]byte, error)

	// FileExtension returns the file extension of the generated output.
	FileExtension() string
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, errors.WithHintf(errors.Newf("unknown translator: %s", name),
			"available translators: %v", r.Available())
	}
	return t, nil
}

// Available returns all registered translator names in sorted order.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
