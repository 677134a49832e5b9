// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package classes generates TypeScript enums, interfaces, and runtime classes
// that convert between class instances and the Avro JSON encoding.
package classes

import (
	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
)

// Name is the registry name of this translator.
const Name = "classes"

// InterfacePrefix is prepended to record names to name their interfaces.
const InterfacePrefix = "I"

// Translator emits enums, an I-prefixed interface per record, and a class per
// record implementing it with static serialize and deserialize methods.
type Translator struct{}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return Name
}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate converts an Avro schema to TypeScript declarations and classes.
func (t *Translator) Translate(schema avro.Type, opts translate.Options) ([]byte, error) {
	data, err := translate.Prepare(schema, opts, translate.Naming{InterfacePrefix: InterfacePrefix})
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

	decls := append(enums, ifaces...)
	for _, r := range data.Records {
		d, err := classDeclaration(data.Context, r)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}

	return []byte(data.Assemble(decls)), nil
}
