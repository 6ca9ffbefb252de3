package rewrite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindScopeEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		open int
		want int
	}{
		{name: "empty scope", text: "{}", open: 0, want: 1},
		{name: "nested", text: "{a{b}c}", open: 0, want: 6},
		{name: "inner scope", text: "{a{b}c}", open: 2, want: 4},
		{name: "object literal", text: "x = {a: {b: 1}}; y", open: 4, want: 14},
		{name: "brace in string", text: `{ s = "}"; }`, open: 0, want: 11},
		{name: "brace in single quoted string", text: `{ s = '{'; }`, open: 0, want: 11},
		{name: "brace in line comment", text: "{ // }\n}", open: 0, want: 7},
		{name: "brace in block comment", text: "{ /* } */ }", open: 0, want: 10},
		{name: "template literal", text: "{ s = `${a}}`; }", open: 0, want: 15},
		{name: "quote in regex", text: "{ if (/'/.test(s)) { x(); } }", open: 0, want: 28},
		{name: "brace and quote in regex class", text: "{ s = s.replace(/[{']/g, ''); }", open: 0, want: 30},
		{name: "regex after return", text: "{ return /}/.test(s); }", open: 0, want: 22},
		{name: "division", text: "{ r = a / b; c = d / e; }", open: 0, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindScopeEnd(tt.text, tt.open)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindScopeEnd_Unmatched(t *testing.T) {
	tests := []struct {
		name string
		text string
		open int
	}{
		{name: "never closed", text: "{ {", open: 0},
		{name: "closed only in string", text: `{ "}"`, open: 0},
		{name: "not a brace", text: "abc", open: 1},
		{name: "out of range", text: "{}", open: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindScopeEnd(tt.text, tt.open)

			var scopeErr *UnmatchedScopeError
			require.True(t, errors.As(err, &scopeErr), "got %v", err)
			assert.Equal(t, tt.open, scopeErr.Offset)
			assert.Contains(t, err.Error(), "unmatched scope")
		})
	}
}

// depthAfter counts unclosed braces in text[start:end+1].
func depthAfter(text string, start, end int) int {
	depth := 0

	for _, c := range text[start : end+1] {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
	}

	return depth
}

func TestFindScopeEnd_ShortestBalancedSpan(t *testing.T) {
	inputs := []string{
		"{}",
		"{{}}{}",
		"{ a: { b: { c: {} } }, d: {} } tail {}",
		"{\n  init() {\n    if (x) { y(); }\n  }\n}\n{}",
		"{ if (/'/.test(s)) { s = s.replace(/'/g, ''); } }",
		"{ n = (a + b) / 2; m = n / 4; }",
	}

	for _, text := range inputs {
		end, err := FindScopeEnd(text, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, depthAfter(text, 0, end), "span of %q is not balanced", text)

		for k := 0; k < end; k++ {
			assert.NotZero(t, depthAfter(text, 0, k), "prefix ending at %d of %q is already balanced", k, text)
		}
	}
}

func TestFindScope(t *testing.T) {
	span, err := FindScope("f({x})", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, span.Start)
	assert.Equal(t, 4, span.End)
	assert.Equal(t, "x", span.Inner("f({x})"))
}
