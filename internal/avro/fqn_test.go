// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFQNResolver_Get(t *testing.T) {
	r := NewFQNResolver()
	r.Add("com.acme", "User")
	r.Add("com.acme", "Address")
	r.Add("", "Root")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "fully qualified", ref: "com.acme.User", want: "com.acme.User"},
		{name: "short name", ref: "Address", want: "com.acme.Address"},
		{name: "no namespace", ref: "Root", want: "Root"},
		{name: "unknown", ref: "Missing", want: ""},
		{name: "unknown qualified", ref: "org.Missing", want: ""},
		{name: "case sensitive", ref: "user", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Get(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFQNResolver_Idempotent(t *testing.T) {
	r := NewFQNResolver()
	r.Add("a.b", "C")
	r.Add("a.b", "C")

	assert.Equal(t, []string{"a.b.C"}, r.FQNs())

	first, err := r.Get("C")
	require.NoError(t, err)
	second, err := r.Get(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFQNResolver_Ambiguous(t *testing.T) {
	r := NewFQNResolver()
	r.Add("org.two", "Foo")
	r.Add("org.one", "Foo")

	_, err := r.Get("Foo")
	require.Error(t, err)

	var ambiguous *AmbiguousReferenceError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, "Foo", ambiguous.Name)
	assert.Equal(t, []string{"org.one.Foo", "org.two.Foo"}, ambiguous.Candidates)
	assert.Contains(t, err.Error(), "org.one.Foo, org.two.Foo")

	// A qualified reference is still resolvable.
	got, err := r.Get("org.two.Foo")
	require.NoError(t, err)
	assert.Equal(t, "org.two.Foo", got)
}
