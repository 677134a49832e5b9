// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// EnumVariant selects how Avro enums are emitted.
type EnumVariant string

// Supported enum variants.
const (
	EnumVariantEnum      EnumVariant = "ENUM"       // export enum E { A = 'A' }
	EnumVariantConstEnum EnumVariant = "CONST_ENUM" // export const enum E { A = 'A' }
	EnumVariantString    EnumVariant = "STRING"     // export type E = 'A' | 'B'
)

// EnumVariants lists the accepted variants in display order.
var EnumVariants = []EnumVariant{EnumVariantEnum, EnumVariantConstEnum, EnumVariantString}

// ParseEnumVariant parses a variant name case-insensitively.
// The empty string yields EnumVariantEnum.
func ParseEnumVariant(s string) (EnumVariant, error) {
	if s == "" {
		return EnumVariantEnum, nil
	}
	v := EnumVariant(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range EnumVariants {
		if v == known {
			return v, nil
		}
	}
	return "", errors.WithHint(errors.Newf("unknown enum variant %q", s), "use one of ENUM, CONST_ENUM, STRING")
}

// Options control the generated output.
type Options struct {
	// Enums selects the enum rendering strategy.
	Enums EnumVariant
	// ConvertEnumToType forces string literal unions for enums.
	ConvertEnumToType bool
	// RemoveNamespace emits every declaration at top level under its bare name.
	RemoveNamespace bool
}

// EnumStyle returns the effective enum strategy.
func (o Options) EnumStyle() EnumVariant {
	if o.ConvertEnumToType {
		return EnumVariantString
	}
	if o.Enums == "" {
		return EnumVariantEnum
	}
	return o.Enums
}
