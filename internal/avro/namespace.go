// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import "github.com/cockroachdb/errors"

// Augment returns a namespaced, reference-resolved copy of root together with
// the resolver holding every record and enum it defines. root is not modified.
//
// Records and enums without a namespace inherit the namespace of the nearest
// enclosing record, unless they reset it with an empty "namespace". Every definition is registered before any reference is
// rewritten, so a reference may name a definition that appears later in the tree.
// References that match nothing are left as written and fail at generation time.
func Augment(root Type) (Type, *FQNResolver, error) {
	resolver := NewFQNResolver()
	tree := assignNamespaces(root, "", resolver)
	resolved, err := resolveReferences(tree, resolver)
	if err != nil {
		return nil, nil, err
	}
	return resolved, resolver, nil
}

// assignNamespaces builds a copy of t with inherited namespaces filled in,
// registering each definition with the resolver on the way down.
func assignNamespaces(t Type, namespace string, resolver *FQNResolver) Type {
	switch t := t.(type) {
	case Union:
		out := make(Union, len(t))
		for i, alt := range t {
			out[i] = assignNamespaces(alt, namespace, resolver)
		}
		return out
	case *Enum:
		ns := t.Namespace
		if ns == "" && !t.NullNamespace {
			ns = namespace
		}
		resolver.Add(ns, t.Name)
		return &Enum{Name: t.Name, Namespace: ns, NullNamespace: t.NullNamespace, Symbols: append([]string(nil), t.Symbols...)}
	case *Record:
		ns := t.Namespace
		if ns == "" && !t.NullNamespace {
			ns = namespace
		}
		resolver.Add(ns, t.Name)
		rec := &Record{Name: t.Name, Namespace: ns, NullNamespace: t.NullNamespace, Fields: make([]Field, len(t.Fields))}
		for i, f := range t.Fields {
			rec.Fields[i] = Field{Name: f.Name, Type: assignNamespaces(f.Type, ns, resolver)}
		}
		return rec
	case *Array:
		return &Array{Items: assignNamespaces(t.Items, namespace, resolver)}
	case *Map:
		return &Map{Values: assignNamespaces(t.Values, namespace, resolver)}
	default:
		// Primitives and references are immutable values.
		return t
	}
}

// resolveReferences rewrites references in a tree built by assignNamespaces.
func resolveReferences(t Type, resolver *FQNResolver) (Type, error) {
	switch t := t.(type) {
	case Reference:
		fqn, err := resolver.Get(string(t))
		if err != nil {
			return nil, errors.WithHint(err, "qualify the reference with its namespace")
		}
		if fqn == "" {
			return t, nil
		}
		return Reference(fqn), nil
	case Union:
		for i, alt := range t {
			r, err := resolveReferences(alt, resolver)
			if err != nil {
				return nil, err
			}
			t[i] = r
		}
		return t, nil
	case *Record:
		for i := range t.Fields {
			r, err := resolveReferences(t.Fields[i].Type, resolver)
			if err != nil {
				return nil, errors.Wrapf(err, "record %s field %q", t.FullName(), t.Fields[i].Name)
			}
			t.Fields[i].Type = r
		}
		return t, nil
	case *Array:
		r, err := resolveReferences(t.Items, resolver)
		if err != nil {
			return nil, err
		}
		t.Items = r
		return t, nil
	case *Map:
		r, err := resolveReferences(t.Values, resolver)
		if err != nil {
			return nil, err
		}
		t.Values = r
		return t, nil
	default:
		return t, nil
	}
}
