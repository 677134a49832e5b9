// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package interfaces generates plain TypeScript enums and interfaces from Avro schemas.
package interfaces

import (
	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
)

// Name is the registry name of this translator.
const Name = "interfaces"

// Translator emits one enum per Avro enum and one interface per record,
// named after the record itself.
type Translator struct{}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return Name
}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate converts an Avro schema to TypeScript declarations.
func (t *Translator) Translate(schema avro.Type, opts translate.Options) ([]byte, error) {
	data, err := translate.Prepare(schema, opts, translate.Naming{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	enums, err := translate.EnumDeclarations(data)
	if err != nil {
		return nil, err
	}
	ifaces, err := translate.InterfaceDeclarations(data)
	if err != nil {
		return nil, err
	}

	return []byte(data.Assemble(append(enums, ifaces...))), nil
}
