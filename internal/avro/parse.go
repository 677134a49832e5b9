// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Parse decodes an Avro schema JSON document into the type model.
func Parse(data []byte) (Type, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return decodeType(raw, "")
}

func decodeType(raw any, loc string) (Type, error) {
	switch v := raw.(type) {
	case string:
		if IsPrimitive(v) {
			return Primitive(v), nil
		}
		return Reference(v), nil
	case []any:
		return decodeUnion(v, loc)
	case map[string]any:
		return decodeComplex(v, loc)
	default:
		return nil, &SchemaError{Location: loc, Err: &UnknownTypeError{Type: describe(raw)}}
	}
}

func decodeUnion(items []any, loc string) (Type, error) {
	if len(items) == 0 {
		return nil, &SchemaError{Location: loc, Err: errors.New("union must have at least one alternative")}
	}
	u := make(Union, 0, len(items))
	for i, item := range items {
		t, err := decodeType(item, fmt.Sprintf("%s[%d]", loc, i))
		if err != nil {
			return nil, err
		}
		u = append(u, t)
	}
	return u, nil
}

func decodeComplex(m map[string]any, loc string) (Type, error) {
	typ, ok := m["type"].(string)
	if !ok {
		return nil, &SchemaError{Location: join(loc, "type"), Err: &UnknownTypeError{Type: describe(m["type"])}}
	}

	switch typ {
	case "record", "error":
		return decodeRecord(m, loc)
	case "enum":
		return decodeEnum(m, loc)
	case "array":
		items, ok := m["items"]
		if !ok {
			return nil, &SchemaError{Location: loc, Err: errors.New("array requires \"items\"")}
		}
		t, err := decodeType(items, join(loc, "items"))
		if err != nil {
			return nil, err
		}
		return &Array{Items: t}, nil
	case "map":
		values, ok := m["values"]
		if !ok {
			return nil, &SchemaError{Location: loc, Err: errors.New("map requires \"values\"")}
		}
		t, err := decodeType(values, join(loc, "values"))
		if err != nil {
			return nil, err
		}
		return &Map{Values: t}, nil
	}

	// {"type": "long", "logicalType": "timestamp-millis"} is generated as its primitive.
	if IsPrimitive(typ) {
		return Primitive(typ), nil
	}
	return nil, &SchemaError{Location: join(loc, "type"), Err: &UnknownTypeError{Type: typ}}
}

func decodeRecord(m map[string]any, loc string) (Type, error) {
	namespace, name, null, err := decodeName(m, loc)
	if err != nil {
		return nil, err
	}

	rawFields, ok := m["fields"].([]any)
	if !ok {
		return nil, &SchemaError{Location: loc, Err: errors.Newf("record %q requires a \"fields\" array", name)}
	}

	rec := &Record{Name: name, Namespace: namespace, NullNamespace: null, Fields: make([]Field, 0, len(rawFields))}
	seen := make(map[string]bool, len(rawFields))
	for i, rf := range rawFields {
		fieldLoc := fmt.Sprintf("%s[%d]", join(loc, "fields"), i)
		fm, ok := rf.(map[string]any)
		if !ok {
			return nil, &SchemaError{Location: fieldLoc, Err: errors.New("field must be an object")}
		}
		fieldName, ok := fm["name"].(string)
		if !ok || fieldName == "" {
			return nil, &SchemaError{Location: fieldLoc, Err: errors.New("field requires a \"name\"")}
		}
		if seen[fieldName] {
			return nil, &SchemaError{Location: fieldLoc, Err: errors.Newf("duplicate field %q in record %q", fieldName, name)}
		}
		seen[fieldName] = true

		rawType, ok := fm["type"]
		if !ok {
			return nil, &SchemaError{Location: fieldLoc, Err: errors.Newf("field %q requires a \"type\"", fieldName)}
		}
		t, err := decodeType(rawType, join(fieldLoc, "type"))
		if err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, Field{Name: fieldName, Type: t})
	}
	return rec, nil
}

func decodeEnum(m map[string]any, loc string) (Type, error) {
	namespace, name, null, err := decodeName(m, loc)
	if err != nil {
		return nil, err
	}

	rawSymbols, ok := m["symbols"].([]any)
	if !ok || len(rawSymbols) == 0 {
		return nil, &SchemaError{Location: loc, Err: errors.Newf("enum %q requires a non-empty \"symbols\" array", name)}
	}

	symbols := make([]string, 0, len(rawSymbols))
	seen := make(map[string]bool, len(rawSymbols))
	for _, rs := range rawSymbols {
		s, ok := rs.(string)
		if !ok {
			return nil, &SchemaError{Location: join(loc, "symbols"), Err: errors.Newf("enum %q symbols must be strings", name)}
		}
		if seen[s] {
			return nil, &SchemaError{Location: join(loc, "symbols"), Err: errors.Newf("duplicate symbol %q in enum %q", s, name)}
		}
		seen[s] = true
		symbols = append(symbols, s)
	}
	return &Enum{Name: name, Namespace: namespace, NullNamespace: null, Symbols: symbols}, nil
}

// decodeName reads "name" and "namespace". A dotted name carries its own namespace,
// which takes precedence over the "namespace" attribute. null reports a
// "namespace" given as the empty string.
func decodeName(m map[string]any, loc string) (namespace, name string, null bool, err error) {
	fullName, ok := m["name"].(string)
	if !ok || fullName == "" {
		return "", "", false, &SchemaError{Location: loc, Err: errors.Newf("%v requires a \"name\"", m["type"])}
	}
	if ns, ok := m["namespace"].(string); ok {
		namespace = ns
	}
	if space, short := splitFullName(fullName); space != "" {
		return space, short, false, nil
	}
	return namespace, fullName, namespace == "" && m["namespace"] != nil, nil
}

func join(loc, key string) string {
	if loc == "" {
		return key
	}
	return loc + "." + key
}

func describe(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
