// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"fmt"
	"strings"
)

// AmbiguousReferenceError indicates a short reference matches more than one registered name.
type AmbiguousReferenceError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("ambiguous reference %q: matches %s", e.Name, strings.Join(e.Candidates, ", "))
}

// UnresolvedReferenceError indicates a reference that names no known record or enum.
type UnresolvedReferenceError struct {
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %q", e.Name)
}

// UnknownTypeError indicates a type node that matches none of the supported shapes.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %s", e.Type)
}

// UnknownPrimitiveError indicates an unrecognized primitive type name.
type UnknownPrimitiveError struct {
	Name string
}

func (e *UnknownPrimitiveError) Error() string {
	return fmt.Sprintf("unknown primitive type: %s", e.Name)
}

// SchemaError reports a malformed schema document.
// Location is a path inside the document such as "fields[1].type".
type SchemaError struct {
	Location string
	Err      error
}

func (e *SchemaError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("invalid schema: %v", e.Err)
	}
	return fmt.Sprintf("invalid schema at %s: %v", e.Location, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// InputNotFoundError indicates an input path that does not exist.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("path %q doesn't exist", e.Path)
}
