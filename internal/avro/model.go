// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro provides the Avro schema type model, namespace resolution,
// and schema loading used by the TypeScript translators.
package avro

import "strings"

// Type is any position in a schema that holds a type: a primitive, a named
// reference, a record, an enum, an array, a map, or a union.
// The set of implementations is closed.
type Type interface {
	isType()
}

// Primitive is one of the Avro primitive type names.
type Primitive string

// Supported primitive types.
const (
	Null    Primitive = "null"
	Boolean Primitive = "boolean"
	Int     Primitive = "int"
	Long    Primitive = "long"
	Float   Primitive = "float"
	Double  Primitive = "double"
	Bytes   Primitive = "bytes"
	String  Primitive = "string"
)

var primitives = map[Primitive]struct{}{
	Null: {}, Boolean: {}, Int: {}, Long: {}, Float: {}, Double: {}, Bytes: {}, String: {},
}

func (Primitive) isType() {}

// IsPrimitive reports whether name is one of the supported primitive type names.
func IsPrimitive(name string) bool {
	_, ok := primitives[Primitive(name)]
	return ok
}

// Reference is a by-name use of a record or enum defined elsewhere in the schema.
// Before augmentation it holds the name as written; afterwards it holds the
// fully qualified name when one could be resolved.
type Reference string

func (Reference) isType() {}

// Field is a single field of a record.
type Field struct {
	Name string
	Type Type
}

// Record is an Avro record definition.
type Record struct {
	Name          string
	Namespace     string
	NullNamespace bool // "namespace" was the empty string; nothing is inherited
	Fields        []Field
}

func (*Record) isType() {}

// FullName returns the fully qualified name of the record.
func (r *Record) FullName() string { return QualifiedName(r.Namespace, r.Name) }

// ShortName returns the unqualified record name.
func (r *Record) ShortName() string { return r.Name }

// Space returns the record namespace, empty when none was assigned.
func (r *Record) Space() string { return r.Namespace }

// Enum is an Avro enum definition. Symbol order is significant.
type Enum struct {
	Name          string
	Namespace     string
	NullNamespace bool // "namespace" was the empty string; nothing is inherited
	Symbols       []string
}

func (*Enum) isType() {}

// FullName returns the fully qualified name of the enum.
func (e *Enum) FullName() string { return QualifiedName(e.Namespace, e.Name) }

// ShortName returns the unqualified enum name.
func (e *Enum) ShortName() string { return e.Name }

// Space returns the enum namespace, empty when none was assigned.
func (e *Enum) Space() string { return e.Namespace }

// Array is an Avro array. Items may be a Union.
type Array struct {
	Items Type
}

func (*Array) isType() {}

// Map is an Avro map. Keys are always strings.
type Map struct {
	Values Type
}

func (*Map) isType() {}

// Union is an ordered list of alternatives.
type Union []Type

func (Union) isType() {}

// Named is implemented by the definitions that can be referenced by name.
type Named interface {
	Type
	FullName() string
	ShortName() string
	Space() string
}

// QualifiedName joins a namespace and a name. An empty namespace yields the bare name.
func QualifiedName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// splitFullName splits a dotted full name into namespace and name.
func splitFullName(fullName string) (namespace, name string) {
	i := strings.LastIndex(fullName, ".")
	if i < 0 {
		return "", fullName
	}
	return fullName[:i], fullName[i+1:]
}

// IsOptional reports whether t is a union whose first alternative is null.
func IsOptional(t Type) bool {
	u, ok := t.(Union)
	return ok && len(u) > 0 && u[0] == Null
}

// HasNull reports whether the union contains the null primitive.
func (u Union) HasNull() bool {
	for _, t := range u {
		if t == Null {
			return true
		}
	}
	return false
}

// NonNull returns the alternatives of u other than null, in order.
func (u Union) NonNull() Union {
	out := make(Union, 0, len(u))
	for _, t := range u {
		if t != Null {
			out = append(out, t)
		}
	}
	return out
}
