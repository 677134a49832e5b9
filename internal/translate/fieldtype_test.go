// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldTypeSchema = `{
	"type": "record", "name": "Holder", "namespace": "com.acme",
	"fields": [
		{"name": "kind", "type": {"type": "enum", "name": "Kind", "symbols": ["A", "B"]}},
		{"name": "child", "type": {"type": "record", "name": "Child", "fields": []}}
	]
}`

func TestFieldType(t *testing.T) {
	tests := []struct {
		name            string
		typ             avro.Type
		removeNamespace bool
		want            string
	}{
		{name: "string", typ: avro.String, want: "string"},
		{name: "boolean", typ: avro.Boolean, want: "boolean"},
		{name: "int", typ: avro.Int, want: "number"},
		{name: "long", typ: avro.Long, want: "number"},
		{name: "float", typ: avro.Float, want: "number"},
		{name: "double", typ: avro.Double, want: "number"},
		{name: "bytes", typ: avro.Bytes, want: "Buffer"},
		{name: "null", typ: avro.Null, want: "null"},
		{name: "union", typ: avro.Union{avro.Null, avro.String, avro.Long}, want: "null | string | number"},
		{name: "array", typ: &avro.Array{Items: avro.String}, want: "string[]"},
		{name: "array of single union", typ: &avro.Array{Items: avro.Union{avro.Int}}, want: "number[]"},
		{name: "array of union", typ: &avro.Array{Items: avro.Union{avro.Null, avro.String}}, want: "(null | string)[]"},
		{name: "map", typ: &avro.Map{Values: avro.Int}, want: "{ [index:string]: number }"},
		{name: "nested map", typ: &avro.Map{Values: &avro.Map{Values: avro.Boolean}}, want: "{ [index:string]: { [index:string]: boolean } }"},
		{name: "record reference", typ: avro.Reference("com.acme.Child"), want: "com.acme.IChild"},
		{name: "short reference", typ: avro.Reference("Child"), want: "com.acme.IChild"},
		{name: "enum reference", typ: avro.Reference("Kind"), want: "com.acme.Kind"},
		{name: "record without namespace", typ: avro.Reference("Child"), removeNamespace: true, want: "IChild"},
		{name: "array of records", typ: &avro.Array{Items: avro.Reference("Child")}, removeNamespace: true, want: "IChild[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := prepare(t, fieldTypeSchema, Options{RemoveNamespace: tt.removeNamespace})
			got, err := data.Context.FieldType(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldType_Errors(t *testing.T) {
	data := prepare(t, fieldTypeSchema, Options{})

	_, err := data.Context.FieldType(avro.Primitive("fixed"))
	var unknownPrimitive *avro.UnknownPrimitiveError
	require.True(t, errors.As(err, &unknownPrimitive))
	assert.Equal(t, "unknown primitive type: fixed", err.Error())

	_, err = data.Context.FieldType(&avro.Array{Items: avro.Reference("Missing")})
	var unresolved *avro.UnresolvedReferenceError
	assert.True(t, errors.As(err, &unresolved))
}

func TestProperty(t *testing.T) {
	data := prepare(t, `{"type":"record","name":"A","fields":[
		{"name":"b","type":["null","string"]},
		{"name":"c","type":["string","null"]},
		{"name":"d","type":["null","string","long"]},
		{"name":"e","type":"int"},
		{"name":"f","type":["null"]}
	]}`, Options{})

	props, err := data.Context.Properties(data.Records[0])
	require.NoError(t, err)
	assert.Equal(t, []Property{
		{Name: "b", Type: "string", Optional: true},
		{Name: "c", Type: "string | null"},
		{Name: "d", Type: "string | number", Optional: true},
		{Name: "e", Type: "number"},
		{Name: "f", Type: "null", Optional: true},
	}, props)
}
