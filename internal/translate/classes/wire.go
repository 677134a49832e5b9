// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package classes

import (
	"fmt"

	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
)

// wireTag returns the key naming alternative t inside a union value of the Avro
// JSON encoding. computed is true when the key is an expression rather than a
// string literal, which is the case for records: their tag is the class FQN constant.
func wireTag(ctx *translate.Context, t avro.Type) (tag string, computed bool, err error) {
	switch t := t.(type) {
	case avro.Reference:
		named, err := ctx.Resolve(t)
		if err != nil {
			return "", false, err
		}
		return wireTag(ctx, named)
	case *avro.Record:
		return ctx.QClassName(t) + ".FQN", true, nil
	case *avro.Enum:
		return translate.Quote(t.FullName()), false, nil
	case avro.Primitive:
		if _, err := translate.PrimitiveType(t); err != nil {
			return "", false, err
		}
		return translate.Quote(string(t)), false, nil
	case *avro.Array:
		return translate.Quote("array"), false, nil
	case *avro.Map:
		return translate.Quote("map"), false, nil
	default:
		return "", false, &avro.UnknownTypeError{Type: fmt.Sprintf("%T inside a union", t)}
	}
}

// mapVars names the locals of one generated map conversion loop.
// Nested loops use increasing depths so inner names never shadow outer ones.
type mapVars struct {
	keys, output, index, key, value string
}

func newMapVars(depth int) mapVars {
	return mapVars{
		keys:   fmt.Sprintf("keys%d", depth),
		output: fmt.Sprintf("output%d", depth),
		index:  fmt.Sprintf("i%d", depth),
		key:    fmt.Sprintf("mapKey%d", depth),
		value:  fmt.Sprintf("mapValue%d", depth),
	}
}

// loop renders the statements converting every own key of in with convert,
// which must read the current entry from v.value.
func (v mapVars) loop(in, outputType, convert string) string {
	return fmt.Sprintf(`const %[1]s = Object.keys(%[6]s);
const %[2]s: %[7]s = {};
for (let %[3]s = 0; %[3]s < %[1]s.length; %[3]s += 1) {
const %[4]s = %[1]s[%[3]s];
const %[5]s = %[6]s[%[4]s];
%[2]s[%[4]s] = %[8]s;
}
return %[2]s;`, v.keys, v.output, v.index, v.key, v.value, in, outputType, convert)
}

func elemVar(depth int) string {
	return fmt.Sprintf("e%d", depth)
}

func isMultiUnion(t avro.Type) bool {
	u, ok := t.(avro.Union)
	return ok && len(u) > 1
}

// nullBranch is the leading branch of a union containing null. Optional fields
// treat undefined like null.
func nullBranch(in string, optional bool, result string) translate.Branch {
	if optional {
		return translate.Branch{Cond: in + " === null || " + in + " === undefined", Body: "return " + result + ";"}
	}
	return translate.Branch{Cond: in + " === null", Body: "return " + result + ";"}
}
