// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/avrots/internal/avro"

// SchemaData is the complete input passed to a translator after preparation.
type SchemaData struct {
	Root    avro.Type      // namespaced, reference-resolved copy of the input
	Records []*avro.Record // every record definition, sorted by name
	Enums   []*avro.Enum   // every enum definition, sorted by name
	Context *Context
}

// Declaration is one generated top-level TypeScript declaration.
type Declaration struct {
	Namespace string // Avro namespace of the declared type, empty when none
	Code      string // unindented declaration source
}

// Property is a resolved record field ready for rendering.
type Property struct {
	Name     string
	Type     string // TypeScript type expression, without null when Optional
	Optional bool   // declared as name?: Type
}
