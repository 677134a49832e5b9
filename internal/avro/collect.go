// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"cmp"
	"slices"
)

// CollectRecords returns every record definition reachable from t, one entry per
// definition site, sorted by name. The sort is stable so equal names keep tree order.
func CollectRecords(t Type) []*Record {
	var out []*Record
	walkDefinitions(t, func(n Named) {
		if r, ok := n.(*Record); ok {
			out = append(out, r)
		}
	})
	slices.SortStableFunc(out, func(a, b *Record) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// CollectEnums returns every enum definition reachable from t, sorted by name.
func CollectEnums(t Type) []*Enum {
	var out []*Enum
	walkDefinitions(t, func(n Named) {
		if e, ok := n.(*Enum); ok {
			out = append(out, e)
		}
	})
	slices.SortStableFunc(out, func(a, b *Enum) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// NameToTypeMapping indexes definitions by fully qualified name.
// When a name is defined twice the later definition wins, records after enums.
func NameToTypeMapping(records []*Record, enums []*Enum) map[string]Named {
	mapping := make(map[string]Named, len(records)+len(enums))
	for _, e := range enums {
		mapping[e.FullName()] = e
	}
	for _, r := range records {
		mapping[r.FullName()] = r
	}
	return mapping
}

func walkDefinitions(t Type, visit func(Named)) {
	switch t := t.(type) {
	case *Record:
		visit(t)
		for _, f := range t.Fields {
			walkDefinitions(f.Type, visit)
		}
	case *Enum:
		visit(t)
	case Union:
		for _, alt := range t {
			walkDefinitions(alt, visit)
		}
	case *Array:
		walkDefinitions(t.Items, visit)
	case *Map:
		walkDefinitions(t.Values, visit)
	}
}
