// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package interfaces

import (
	"strings"
	"testing"

	"github.com/dacolabs/avrots/internal/avro"
	"github.com/dacolabs/avrots/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translateSchema(t *testing.T, schema string, opts translate.Options) string {
	t.Helper()
	parsed, err := avro.Parse([]byte(schema))
	require.NoError(t, err)
	out, err := (&Translator{}).Translate(parsed, opts)
	require.NoError(t, err)
	return string(out)
}

func TestTranslate_OptionalField(t *testing.T) {
	result := translateSchema(t, `{"type":"record","name":"A","fields":[{"name":"b","type":["null","string"]}]}`, translate.Options{})

	assert.Equal(t, "export interface A {\n  b?: string;\n}", result)
}

func TestTranslate_EnumsBeforeInterfaces(t *testing.T) {
	schema := `{
		"type": "record", "name": "Card",
		"fields": [
			{"name": "suit", "type": {"type": "enum", "name": "Suit", "symbols": ["SPADES", "HEARTS"]}},
			{"name": "rank", "type": "int"},
			{"name": "deck", "type": {"type": "record", "name": "Deck", "fields": [{"name": "size", "type": "long"}]}}
		]
	}`
	result := translateSchema(t, schema, translate.Options{})

	suit := strings.Index(result, "export enum Suit {")
	card := strings.Index(result, "export interface Card {")
	deck := strings.Index(result, "export interface Deck {")
	require.GreaterOrEqual(t, suit, 0)
	require.Greater(t, card, suit)
	require.Greater(t, deck, card)

	assert.Contains(t, result, "  suit: Suit;\n")
	assert.Contains(t, result, "  deck: Deck;\n")
	assert.NotContains(t, result, "class")
}

func TestTranslate_EnumStrategies(t *testing.T) {
	schema := `{"type":"record","name":"R","fields":[{"name":"e","type":{"type":"enum","name":"E","symbols":["C","A","B"]}}]}`

	tests := []struct {
		name string
		opts translate.Options
		want string
	}{
		{name: "enum", opts: translate.Options{}, want: "export enum E {\n  C = 'C',\n  A = 'A',\n  B = 'B',\n}"},
		{name: "const enum", opts: translate.Options{Enums: translate.EnumVariantConstEnum}, want: "export const enum E {\n  C = 'C',\n  A = 'A',\n  B = 'B',\n}"},
		{name: "string", opts: translate.Options{Enums: translate.EnumVariantString}, want: "export type E = 'C' | 'A' | 'B';"},
		{name: "convert to type", opts: translate.Options{ConvertEnumToType: true}, want: "export type E = 'C' | 'A' | 'B';"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, translateSchema(t, schema, tt.opts), tt.want)
		})
	}
}

func TestTranslate_Namespaces(t *testing.T) {
	schema := `{
		"type": "record", "name": "User", "namespace": "com.acme",
		"fields": [
			{"name": "address", "type": {"type": "record", "name": "Address", "namespace": "com.geo", "fields": [
				{"name": "city", "type": "string"}
			]}},
			{"name": "home", "type": ["null", "Address"]},
			{"name": "tags", "type": {"type": "map", "values": "int"}}
		]
	}`

	t.Run("kept", func(t *testing.T) {
		result := translateSchema(t, schema, translate.Options{})
		assert.Equal(t, `export namespace com.acme {
  export interface User {
    address: com.geo.Address;
    home?: com.geo.Address;
    tags: { [index:string]: number };
  }
}

export namespace com.geo {
  export interface Address {
    city: string;
  }
}`, result)
	})

	t.Run("removed", func(t *testing.T) {
		result := translateSchema(t, schema, translate.Options{RemoveNamespace: true})
		assert.Equal(t, `export interface Address {
  city: string;
}

export interface User {
  address: Address;
  home?: Address;
  tags: { [index:string]: number };
}`, result)
	})
}

func TestTranslate_UnresolvedReference(t *testing.T) {
	parsed, err := avro.Parse([]byte(`{"type":"record","name":"A","fields":[{"name":"x","type":"Nowhere"}]}`))
	require.NoError(t, err)

	_, err = (&Translator{}).Translate(parsed, translate.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unresolved reference "Nowhere"`)
}

func TestTranslator_Metadata(t *testing.T) {
	tr := &Translator{}
	assert.Equal(t, "interfaces", tr.Name())
	assert.Equal(t, ".ts", tr.FileExtension())
}

func TestTranslate_ShadowedNamespace(t *testing.T) {
	schema := `{
		"type": "record", "name": "R", "namespace": "com.acme",
		"fields": [
			{"name": "y", "type": {"type": "record", "name": "Y", "namespace": "acme", "fields": []}},
			{"name": "geo", "type": {"type": "record", "name": "Geo", "namespace": "com.geo", "fields": []}}
		]
	}`
	result := translateSchema(t, schema, translate.Options{})

	assert.Contains(t, result, "y: acme_Y;")
	assert.Contains(t, result, "geo: com.geo.Geo;")
	assert.True(t, strings.HasSuffix(result, "\n\nimport acme_Y = acme.Y;"), result)
}
