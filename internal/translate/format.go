// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "strings"

// Indent is the indentation unit of generated code.
const Indent = "  "

// Format re-indents generated source by curly brace depth. Leading and
// trailing whitespace of every line is discarded; braces inside string
// literals and comments are ignored. Empty lines are kept.
func Format(src string) string {
	lines := strings.Split(strings.TrimSpace(src), "\n")
	var sb strings.Builder
	depth := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line == "" {
			continue
		}

		opens, closes, leading := braceCounts(line)
		level := max(depth-leading, 0)
		sb.WriteString(strings.Repeat(Indent, level))
		sb.WriteString(line)
		depth = max(depth+opens-closes, 0)
	}
	return sb.String()
}

// braceCounts counts the curly braces of one line outside string literals and
// block comments, and how many closing braces precede any other code.
func braceCounts(line string) (opens, closes, leading int) {
	var quote byte
	inComment := false
	seenCode := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inComment:
			if ch == '*' && i+1 < len(line) && line[i+1] == '/' {
				inComment = false
				i++
			}
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '/' && i+1 < len(line) && line[i+1] == '*':
			inComment = true
			i++
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return opens, closes, leading
		case ch == '\'' || ch == '"' || ch == '`':
			quote = ch
			seenCode = true
		case ch == '{':
			opens++
			seenCode = true
		case ch == '}':
			closes++
			if !seenCode {
				leading++
			}
		default:
			if ch != ' ' && ch != '\t' {
				seenCode = true
			}
		}
	}
	return opens, closes, leading
}
