// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/cockroachdb/errors"
	"github.com/dacolabs/avrots/internal/avro"
)

// Context carries the per-run lookup state every generator needs.
// A Context belongs to a single document and is never shared between runs.
type Context struct {
	Resolver *avro.FQNResolver
	Types    map[string]avro.Named // FQN -> definition
	Options  Options
	Naming   Naming

	scope string // namespace block the generated code is emitted into
	refs  *references
}

// Resolve looks up the definition a reference names.
func (c *Context) Resolve(ref avro.Reference) (avro.Named, error) {
	fqn, err := c.Resolver.Get(string(ref))
	if err != nil {
		return nil, err
	}
	named, ok := c.Types[fqn]
	if !ok {
		return nil, &avro.UnresolvedReferenceError{Name: string(ref)}
	}
	return named, nil
}

// Prepare augments schema with namespaces and resolved references, collects
// its definitions, and builds the generation context.
func Prepare(schema avro.Type, opts Options, naming Naming) (*SchemaData, error) {
	root, resolver, err := avro.Augment(schema)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve namespaces")
	}

	records := avro.CollectRecords(root)
	enums := avro.CollectEnums(root)

	types := avro.NameToTypeMapping(records, enums)
	return &SchemaData{
		Root:    root,
		Records: records,
		Enums:   enums,
		Context: &Context{
			Resolver: resolver,
			Types:    types,
			Options:  opts,
			Naming:   naming,
			refs:     newReferences(types, naming),
		},
	}, nil
}

// Properties resolves the fields of r into renderable properties.
func (c *Context) Properties(r *avro.Record) ([]Property, error) {
	props := make([]Property, 0, len(r.Fields))
	for _, f := range r.Fields {
		p, err := c.Property(f)
		if err != nil {
			return nil, errors.Wrapf(err, "record %s field %q", r.FullName(), f.Name)
		}
		props = append(props, p)
	}
	return props, nil
}
