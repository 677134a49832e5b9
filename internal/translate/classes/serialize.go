// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classes

import (
	"fmt"
	"strings"

	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
)

const unserializable = "throw new TypeError('Unserializable type!');"

// serializer generates expressions converting class instances into Avro JSON values.
type serializer struct {
	ctx *translate.Context
}

func (s serializer) field(f avro.Field, in string) (string, error) {
	if u, ok := f.Type.(avro.Union); ok && avro.IsOptional(u) {
		return s.union(u, in, 0, true)
	}
	return s.value(f.Type, in, 0)
}

func (s serializer) value(t avro.Type, in string, depth int) (string, error) {
	switch t := t.(type) {
	case avro.Primitive:
		if _, err := translate.PrimitiveType(t); err != nil {
			return "", err
		}
		return in, nil
	case *avro.Enum:
		return in, nil
	case avro.Reference:
		named, err := s.ctx.Resolve(t)
		if err != nil {
			return "", err
		}
		return s.value(named, in, depth)
	case *avro.Record:
		return s.ctx.QClassName(t) + ".serialize(" + in + ")", nil
	case *avro.Array:
		e := elemVar(depth)
		body, err := s.value(t.Items, e, depth+1)
		if err != nil {
			return "", err
		}
		if isMultiUnion(t.Items) {
			return fmt.Sprintf("%s.map((%s) => {\nreturn %s;\n})", in, e, body), nil
		}
		return fmt.Sprintf("%s.map((%s) => %s)", in, e, body), nil
	case *avro.Map:
		vars := newMapVars(depth)
		body, err := s.value(t.Values, vars.value, depth+1)
		if err != nil {
			return "", err
		}
		return translate.SelfExecuting(vars.loop(in, "{ [index:string]: any }", body)), nil
	case avro.Union:
		return s.union(t, in, depth, false)
	default:
		return "", &avro.UnknownTypeError{Type: fmt.Sprintf("%T", t)}
	}
}

// union mirrors deserializer.union: it classifies the value by runtime shape
// in declared order and wraps it under the tag of the first matching alternative.
func (s serializer) union(u avro.Union, in string, depth int, optional bool) (string, error) {
	if len(u) == 1 {
		return s.value(u[0], in, depth)
	}

	var branches []translate.Branch
	if u.HasNull() {
		branches = append(branches, nullBranch(in, optional, "null"))
	}
	for _, alt := range u.NonNull() {
		cond, err := s.condition(alt, in)
		if err != nil {
			return "", err
		}
		tag, computed, err := wireTag(s.ctx, alt)
		if err != nil {
			return "", err
		}
		if computed {
			tag = "[" + tag + "]"
		}
		body, err := s.value(alt, in, depth)
		if err != nil {
			return "", err
		}
		branches = append(branches, translate.Branch{
			Cond: cond,
			Body: "return { " + tag + ": " + body + " };",
		})
	}
	return translate.SelfExecuting(translate.Conditional(branches, unserializable)), nil
}

// condition returns a runtime test that in holds a value of type t.
func (s serializer) condition(t avro.Type, in string) (string, error) {
	switch t := t.(type) {
	case avro.Primitive:
		switch t {
		case avro.String:
			return "typeof " + in + " === 'string'", nil
		case avro.Boolean:
			return "typeof " + in + " === 'boolean'", nil
		case avro.Int, avro.Long:
			return "typeof " + in + " === 'number' && " + in + " % 1 === 0", nil
		case avro.Float, avro.Double:
			return "typeof " + in + " === 'number'", nil
		case avro.Bytes:
			return "Buffer.isBuffer(" + in + ")", nil
		case avro.Null:
			return in + " === null", nil
		default:
			return "", &avro.UnknownPrimitiveError{Name: string(t)}
		}
	case avro.Reference:
		named, err := s.ctx.Resolve(t)
		if err != nil {
			return "", err
		}
		return s.condition(named, in)
	case *avro.Record:
		return in + " instanceof " + s.ctx.QClassName(t), nil
	case *avro.Enum:
		symbols := make([]string, len(t.Symbols))
		for i, sym := range t.Symbols {
			symbols[i] = translate.Quote(sym)
		}
		return "typeof " + in + " === 'string' && [" + strings.Join(symbols, ", ") + "].indexOf(" + in + ") >= 0", nil
	case *avro.Array:
		return "Array.isArray(" + in + ")", nil
	case *avro.Map:
		return "typeof " + in + " === 'object' && " + in + " !== null && !Array.isArray(" + in + ")", nil
	default:
		return "", &avro.UnknownTypeError{Type: fmt.Sprintf("%T", t)}
	}
}
