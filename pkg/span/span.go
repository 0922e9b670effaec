// Package span provides half-open character ranges over a single line of text.
package span

// Span is a half-open index range [Lo, Hi) into a specific source string.
// A Span is only meaningful against the string it was computed from; spans
// are recomputed per line and carry no persistent identity.
type Span struct {
	// Lo is the index of the first character in the range (inclusive).
	Lo int

	// Hi is the index just past the last character in the range (exclusive).
	Hi int
}

// Len returns the number of characters covered by the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Of returns the substring of line covered by the span.
func (s Span) Of(line string) string {
	return line[s.Lo:s.Hi]
}

// Intersects reports whether a and b overlap or touch at an endpoint.
// Boundary semantics are inclusive: a zero-width span sitting exactly on
// another span's edge still intersects it.
func Intersects(a, b Span) bool {
	return a.Hi >= b.Lo && b.Hi >= a.Lo
}

// WholeLine returns the span covering all of s.
func WholeLine(s string) Span {
	return Span{Lo: 0, Hi: len(s)}
}
