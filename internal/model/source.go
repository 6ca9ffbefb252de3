// Package model defines the data structures shared by the migration pipeline.
package model

// Path represents a file system path.
type Path string

// ScopeSpan is the region bounded by a matched brace pair.
// Start is the offset of the opening brace and End the offset of its
// matching closing brace, both inclusive.
type ScopeSpan struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span, braces included.
func (s ScopeSpan) Len() int {
	return s.End - s.Start + 1
}

// Inner returns the text between the braces of the span.
func (s ScopeSpan) Inner(text string) string {
	return text[s.Start+1 : s.End]
}
