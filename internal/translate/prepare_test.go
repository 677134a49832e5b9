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

func prepare(t *testing.T, schema string, opts Options) *SchemaData {
	t.Helper()
	parsed, err := avro.Parse([]byte(schema))
	require.NoError(t, err)
	data, err := Prepare(parsed, opts, Naming{InterfacePrefix: "I"})
	require.NoError(t, err)
	return data
}

func TestPrepare_CollectsDefinitions(t *testing.T) {
	data := prepare(t, `{
		"type": "record", "name": "Order", "namespace": "shop",
		"fields": [
			{"name": "status", "type": {"type": "enum", "name": "Status", "symbols": ["NEW"]}},
			{"name": "customer", "type": {"type": "record", "name": "Customer", "fields": [
				{"name": "name", "type": "string"}
			]}},
			{"name": "previous", "type": ["null", "Status"]}
		]
	}`, Options{})

	require.Len(t, data.Records, 2)
	assert.Equal(t, "Customer", data.Records[0].Name)
	assert.Equal(t, "Order", data.Records[1].Name)
	require.Len(t, data.Enums, 1)
	assert.Equal(t, "shop", data.Enums[0].Namespace)

	assert.Contains(t, data.Context.Types, "shop.Customer")
	assert.Contains(t, data.Context.Types, "shop.Status")

	named, err := data.Context.Resolve("Status")
	require.NoError(t, err)
	assert.Equal(t, "shop.Status", named.FullName())
}

func TestPrepare_AmbiguousReference(t *testing.T) {
	parsed, err := avro.Parse([]byte(`{
		"type": "record", "name": "R",
		"fields": [
			{"name": "a", "type": {"type": "record", "name": "Foo", "namespace": "one", "fields": []}},
			{"name": "b", "type": {"type": "record", "name": "Foo", "namespace": "two", "fields": []}},
			{"name": "c", "type": "Foo"}
		]
	}`))
	require.NoError(t, err)

	_, err = Prepare(parsed, Options{}, Naming{})
	var ambiguous *avro.AmbiguousReferenceError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, []string{"one.Foo", "two.Foo"}, ambiguous.Candidates)
}

func TestContext_ResolveUnresolved(t *testing.T) {
	data := prepare(t, `{"type":"record","name":"A","fields":[{"name":"x","type":"Nowhere"}]}`, Options{})

	_, err := data.Context.Resolve("Nowhere")
	var unresolved *avro.UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "Nowhere", unresolved.Name)

	_, err = data.Context.Properties(data.Records[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "x"`)
	assert.True(t, errors.As(err, &unresolved))
}
