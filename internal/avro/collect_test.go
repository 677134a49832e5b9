// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_SortedByName(t *testing.T) {
	root := mustParse(t, `{
		"type": "record", "name": "Zoo", "namespace": "z",
		"fields": [
			{"name": "keeper", "type": {"type": "record", "name": "Keeper", "fields": [
				{"name": "shift", "type": {"type": "enum", "name": "Shift", "symbols": ["DAY", "NIGHT"]}}
			]}},
			{"name": "animals", "type": {"type": "map", "values": {"type": "array", "items": [
				"null",
				{"type": "record", "name": "Animal", "fields": [
					{"name": "diet", "type": {"type": "enum", "name": "Diet", "symbols": ["MEAT"]}}
				]}
			]}}}
		]
	}`)

	augmented, _, err := Augment(root)
	require.NoError(t, err)

	records := CollectRecords(augmented)
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"Animal", "Keeper", "Zoo"}, names)

	enums := CollectEnums(augmented)
	require.Len(t, enums, 2)
	assert.Equal(t, "Diet", enums[0].Name)
	assert.Equal(t, "Shift", enums[1].Name)
}

func TestCollect_KeepsEveryDefinitionSite(t *testing.T) {
	root := mustParse(t, `{
		"type": "record", "name": "R",
		"fields": [
			{"name": "a", "type": {"type": "enum", "name": "E", "namespace": "one", "symbols": ["X"]}},
			{"name": "b", "type": {"type": "enum", "name": "E", "namespace": "two", "symbols": ["Y"]}},
			{"name": "c", "type": "one.E"}
		]
	}`)

	augmented, _, err := Augment(root)
	require.NoError(t, err)

	enums := CollectEnums(augmented)
	require.Len(t, enums, 2)
	// Stable: tree order among equal names.
	assert.Equal(t, "one", enums[0].Namespace)
	assert.Equal(t, "two", enums[1].Namespace)
}

func TestNameToTypeMapping(t *testing.T) {
	root := mustParse(t, `{
		"type": "record", "name": "R", "namespace": "ns",
		"fields": [{"name": "e", "type": {"type": "enum", "name": "E", "symbols": ["X"]}}]
	}`)

	augmented, _, err := Augment(root)
	require.NoError(t, err)

	mapping := NameToTypeMapping(CollectRecords(augmented), CollectEnums(augmented))
	require.Len(t, mapping, 2)
	assert.IsType(t, &Record{}, mapping["ns.R"])
	assert.IsType(t, &Enum{}, mapping["ns.E"])
}
