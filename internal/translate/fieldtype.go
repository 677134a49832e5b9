// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"

	"github.com/dacolabs/avrots/internal/avro"
)

// PrimitiveType maps an Avro primitive to its TypeScript type.
func PrimitiveType(p avro.Primitive) (string, error) {
	switch p {
	case avro.Long, avro.Int, avro.Double, avro.Float:
		return "number", nil
	case avro.Bytes:
		return "Buffer", nil
	case avro.Null:
		return "null", nil
	case avro.Boolean:
		return "boolean", nil
	case avro.String:
		return "string", nil
	default:
		return "", &avro.UnknownPrimitiveError{Name: string(p)}
	}
}

// FieldType returns the TypeScript type expression for t.
func (c *Context) FieldType(t avro.Type) (string, error) {
	switch t := t.(type) {
	case avro.Primitive:
		return PrimitiveType(t)
	case avro.Reference:
		named, err := c.Resolve(t)
		if err != nil {
			return "", err
		}
		return c.FieldType(named)
	case avro.Union:
		parts := make([]string, len(t))
		for i, alt := range t {
			s, err := c.FieldType(alt)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, " | "), nil
	case *avro.Record:
		return c.QInterfaceName(t), nil
	case *avro.Enum:
		return c.QEnumName(t), nil
	case *avro.Array:
		items, err := c.FieldType(t.Items)
		if err != nil {
			return "", err
		}
		if u, ok := t.Items.(avro.Union); ok && len(u) > 1 {
			return "(" + items + ")[]", nil
		}
		return items + "[]", nil
	case *avro.Map:
		values, err := c.FieldType(t.Values)
		if err != nil {
			return "", err
		}
		return "{ [index:string]: " + values + " }", nil
	default:
		return "", &avro.UnknownTypeError{Type: fmt.Sprintf("%T", t)}
	}
}

// Property resolves a record field. A union with null as its first alternative
// becomes an optional property typed by the remaining alternatives.
func (c *Context) Property(f avro.Field) (Property, error) {
	if !avro.IsOptional(f.Type) {
		typ, err := c.FieldType(f.Type)
		if err != nil {
			return Property{}, err
		}
		return Property{Name: f.Name, Type: typ}, nil
	}

	rest := f.Type.(avro.Union).NonNull()
	if len(rest) == 0 {
		return Property{Name: f.Name, Type: "null", Optional: true}, nil
	}
	var inner avro.Type = rest
	if len(rest) == 1 {
		inner = rest[0]
	}
	typ, err := c.FieldType(inner)
	if err != nil {
		return Property{}, err
	}
	return Property{Name: f.Name, Type: typ, Optional: true}, nil
}
