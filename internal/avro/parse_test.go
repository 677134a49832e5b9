// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Record(t *testing.T) {
	schema, err := Parse([]byte(`{
		"type": "record",
		"name": "User",
		"namespace": "com.acme",
		"fields": [
			{"name": "id", "type": "long"},
			{"name": "email", "type": ["null", "string"]},
			{"name": "tags", "type": {"type": "array", "items": "string"}},
			{"name": "scores", "type": {"type": "map", "values": "int"}},
			{"name": "address", "type": "Address"}
		]
	}`))
	require.NoError(t, err)

	rec, ok := schema.(*Record)
	require.True(t, ok)
	assert.Equal(t, "User", rec.Name)
	assert.Equal(t, "com.acme", rec.Namespace)
	require.Len(t, rec.Fields, 5)

	assert.Equal(t, Long, rec.Fields[0].Type)
	assert.Equal(t, Union{Null, String}, rec.Fields[1].Type)
	assert.Equal(t, &Array{Items: String}, rec.Fields[2].Type)
	assert.Equal(t, &Map{Values: Int}, rec.Fields[3].Type)
	assert.Equal(t, Reference("Address"), rec.Fields[4].Type)
}

func TestParse_Enum(t *testing.T) {
	schema, err := Parse([]byte(`{"type":"enum","name":"Color","symbols":["RED","GREEN","BLUE"]}`))
	require.NoError(t, err)

	enum, ok := schema.(*Enum)
	require.True(t, ok)
	assert.Equal(t, "Color", enum.Name)
	assert.Empty(t, enum.Namespace)
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, enum.Symbols)
}

func TestParse_EmptyNamespace(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		null   bool
	}{
		{name: "absent", schema: `{"type":"enum","name":"E","symbols":["A"]}`},
		{name: "json null", schema: `{"type":"enum","name":"E","namespace":null,"symbols":["A"]}`},
		{name: "empty string", schema: `{"type":"enum","name":"E","namespace":"","symbols":["A"]}`, null: true},
		{name: "dotted name wins", schema: `{"type":"enum","name":"a.E","namespace":"","symbols":["A"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := Parse([]byte(tt.schema))
			require.NoError(t, err)
			assert.Equal(t, tt.null, schema.(*Enum).NullNamespace)
		})
	}
}

func TestParse_DottedNameCarriesNamespace(t *testing.T) {
	schema, err := Parse([]byte(`{"type":"record","name":"org.example.Event","namespace":"ignored","fields":[]}`))
	require.NoError(t, err)

	rec := schema.(*Record)
	assert.Equal(t, "Event", rec.Name)
	assert.Equal(t, "org.example", rec.Namespace)
	assert.Equal(t, "org.example.Event", rec.FullName())
}

func TestParse_PrimitiveObjectForm(t *testing.T) {
	schema, err := Parse([]byte(`{"type":"long","logicalType":"timestamp-millis"}`))
	require.NoError(t, err)
	assert.Equal(t, Long, schema)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "invalid json", input: `{"type":`, wantErr: "invalid schema"},
		{name: "empty union", input: `[]`, wantErr: "at least one alternative"},
		{name: "record without name", input: `{"type":"record","fields":[]}`, wantErr: "requires a \"name\""},
		{name: "record without fields", input: `{"type":"record","name":"A"}`, wantErr: "\"fields\" array"},
		{name: "duplicate field", input: `{"type":"record","name":"A","fields":[{"name":"x","type":"int"},{"name":"x","type":"int"}]}`, wantErr: "duplicate field \"x\""},
		{name: "empty symbols", input: `{"type":"enum","name":"E","symbols":[]}`, wantErr: "non-empty"},
		{name: "duplicate symbol", input: `{"type":"enum","name":"E","symbols":["A","A"]}`, wantErr: "duplicate symbol \"A\""},
		{name: "array without items", input: `{"type":"array"}`, wantErr: "requires \"items\""},
		{name: "map without values", input: `{"type":"map"}`, wantErr: "requires \"values\""},
		{name: "fixed", input: `{"type":"fixed","name":"F","size":16}`, wantErr: "unknown type fixed"},
		{name: "number", input: `42`, wantErr: "unknown type 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var schemaErr *SchemaError
			assert.True(t, errors.As(err, &schemaErr))
		})
	}
}

func TestParse_ErrorLocation(t *testing.T) {
	_, err := Parse([]byte(`{"type":"record","name":"A","fields":[{"name":"ok","type":"int"},{"name":"bad","type":{"type":"fixed","name":"F","size":2}}]}`))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "fields[1].type.type", schemaErr.Location)

	var unknown *UnknownTypeError
	assert.True(t, errors.As(err, &unknown))
}

func TestIsOptional(t *testing.T) {
	assert.True(t, IsOptional(Union{Null, String}))
	assert.True(t, IsOptional(Union{Null}))
	assert.False(t, IsOptional(Union{String, Null}))
	assert.False(t, IsOptional(String))
	assert.False(t, IsOptional(Union{}))
}

func TestUnion_NonNull(t *testing.T) {
	u := Union{String, Null, Reference("A")}
	assert.True(t, u.HasNull())
	assert.Equal(t, Union{String, Reference("A")}, u.NonNull())
	assert.False(t, Union{Int}.HasNull())
}
