// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	hamba "github.com/hamba/avro/v2"
)

// Validate checks a raw schema document against the Avro specification.
// It is stricter than Parse: short references must resolve through the enclosing
// namespace and every named type must be defined before use.
// Each call uses its own name cache so documents never see each other's types.
func Validate(data []byte) error {
	if _, err := hamba.ParseWithCache(string(data), "", &hamba.SchemaCache{}); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}
