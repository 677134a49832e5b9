// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"slices"
	"strings"
)

// FQNResolver is the registry of fully qualified record and enum names known in one schema.
// A resolver belongs to a single generation run.
type FQNResolver struct {
	fqns map[string]struct{}
}

// NewFQNResolver creates an empty resolver.
func NewFQNResolver() *FQNResolver {
	return &FQNResolver{fqns: make(map[string]struct{})}
}

// Add registers namespace.name. Adding the same identity twice is a no-op.
func (r *FQNResolver) Add(namespace, name string) {
	r.fqns[QualifiedName(namespace, name)] = struct{}{}
}

// Get resolves a short or qualified name to its fully qualified name.
// A known FQN is returned unchanged. Otherwise the registered FQNs whose last
// segment equals name are considered: a single match is returned, no match
// returns the empty string, and several matches return an AmbiguousReferenceError.
func (r *FQNResolver) Get(name string) (string, error) {
	if _, ok := r.fqns[name]; ok {
		return name, nil
	}

	var matching []string
	for fqn := range r.fqns {
		if lastSegment(fqn) == name {
			matching = append(matching, fqn)
		}
	}

	switch len(matching) {
	case 0:
		return "", nil
	case 1:
		return matching[0], nil
	default:
		slices.Sort(matching)
		return "", &AmbiguousReferenceError{Name: name, Candidates: matching}
	}
}

// FQNs returns the registered names in sorted order.
func (r *FQNResolver) FQNs() []string {
	out := make([]string, 0, len(r.fqns))
	for fqn := range r.fqns {
		out = append(out, fqn)
	}
	slices.Sort(out)
	return out
}

func lastSegment(fqn string) string {
	return fqn[strings.LastIndex(fqn, ".")+1:]
}
