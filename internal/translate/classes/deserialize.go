// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classes

import (
	"fmt"

	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
)

const unresolvable = "throw new TypeError('Unresolvable type');"

// deserializer generates expressions converting Avro JSON values into class instances.
type deserializer struct {
	ctx *translate.Context
}

func (d deserializer) field(f avro.Field, in string) (string, error) {
	if u, ok := f.Type.(avro.Union); ok && avro.IsOptional(u) {
		return d.union(u, in, 0, true)
	}
	return d.value(f.Type, in, 0)
}

func (d deserializer) value(t avro.Type, in string, depth int) (string, error) {
	switch t := t.(type) {
	case avro.Primitive:
		if _, err := translate.PrimitiveType(t); err != nil {
			return "", err
		}
		return in, nil
	case *avro.Enum:
		return in, nil
	case avro.Reference:
		named, err := d.ctx.Resolve(t)
		if err != nil {
			return "", err
		}
		return d.value(named, in, depth)
	case *avro.Record:
		return d.ctx.QClassName(t) + ".deserialize(" + in + ")", nil
	case *avro.Array:
		e := elemVar(depth)
		body, err := d.value(t.Items, e, depth+1)
		if err != nil {
			return "", err
		}
		if isMultiUnion(t.Items) {
			return fmt.Sprintf("%s.map((%s: any) => {\nreturn %s;\n})", in, e, body), nil
		}
		return fmt.Sprintf("%s.map((%s: any) => %s)", in, e, body), nil
	case *avro.Map:
		typ, err := d.ctx.FieldType(t)
		if err != nil {
			return "", err
		}
		vars := newMapVars(depth)
		body, err := d.value(t.Values, vars.value, depth+1)
		if err != nil {
			return "", err
		}
		return translate.SelfExecuting(vars.loop(in, typ, body)), nil
	case avro.Union:
		return d.union(t, in, depth, false)
	default:
		return "", &avro.UnknownTypeError{Type: fmt.Sprintf("%T", t)}
	}
}

// union tests for null first, then for the tag of every other alternative in
// declared order. The first present tag selects the conversion of its payload.
func (d deserializer) union(u avro.Union, in string, depth int, optional bool) (string, error) {
	if len(u) == 1 {
		return d.value(u[0], in, depth)
	}

	var branches []translate.Branch
	if u.HasNull() {
		result := "null"
		if optional {
			result = "undefined"
		}
		branches = append(branches, nullBranch(in, optional, result))
	}
	for _, alt := range u.NonNull() {
		tag, _, err := wireTag(d.ctx, alt)
		if err != nil {
			return "", err
		}
		payload := in + "[" + tag + "]"
		body, err := d.value(alt, payload, depth)
		if err != nil {
			return "", err
		}
		branches = append(branches, translate.Branch{
			Cond: payload + " !== undefined",
			Body: "return " + body + ";",
		})
	}
	return translate.SelfExecuting(translate.Conditional(branches, unresolvable)), nil
}
