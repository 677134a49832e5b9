// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "nested blocks",
			src:  "export interface A {\nb: string;\nc: { [index:string]: number };\n}",
			want: "export interface A {\n  b: string;\n  c: { [index:string]: number };\n}",
		},
		{
			name: "else chain and self executing function",
			src:  "x: (() => {\nif (a) {\nreturn 1;\n} else if (b) {\nreturn 2;\n}\nthrow e;\n})(),",
			want: "x: (() => {\n  if (a) {\n    return 1;\n  } else if (b) {\n    return 2;\n  }\n  throw e;\n})(),",
		},
		{
			name: "braces in strings and comments",
			src:  "f() {\nconst s = '{';\n/* { */\nreturn '}';\n}",
			want: "f() {\n  const s = '{';\n  /* { */\n  return '}';\n}",
		},
		{
			name: "escaped quote",
			src:  "a {\nx = 'it\\'s {';\n}",
			want: "a {\n  x = 'it\\'s {';\n}",
		},
		{
			name: "existing indentation replaced and blank lines kept",
			src:  "    a {\n        b {\n\n}\n    }\n",
			want: "a {\n  b {\n\n  }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.src))
		})
	}
}

func TestConditional(t *testing.T) {
	got := Conditional([]Branch{
		{Cond: "v === null", Body: "return null;"},
		{Cond: "typeof v === 'string'", Body: "return v;"},
	}, "throw new TypeError('no');")

	assert.Equal(t, "if (v === null) {\nreturn null;\n} else if (typeof v === 'string') {\nreturn v;\n}\nthrow new TypeError('no');", got)
	assert.Equal(t, "throw x;", Conditional(nil, "throw x;"))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'com.acme.User'", Quote("com.acme.User"))
	assert.Equal(t, `'it\'s'`, Quote("it's"))
}
