// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "strings"

// Branch is one arm of a generated if / else if chain.
type Branch struct {
	Cond string
	Body string
}

// Conditional renders branches as an if / else if chain followed by fallback.
func Conditional(branches []Branch, fallback string) string {
	var sb strings.Builder
	for i, b := range branches {
		if i == 0 {
			sb.WriteString("if (" + b.Cond + ") {\n")
		} else {
			sb.WriteString("} else if (" + b.Cond + ") {\n")
		}
		sb.WriteString(b.Body + "\n")
	}
	if len(branches) > 0 {
		sb.WriteString("}\n")
	}
	sb.WriteString(fallback)
	return sb.String()
}

// SelfExecuting wraps statements into an immediately invoked arrow function
// so they can be used where an expression is expected.
func SelfExecuting(code string) string {
	return "(() => {\n" + code + "\n})()"
}

// Quote returns s as a single-quoted TypeScript string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`) + "'"
}
