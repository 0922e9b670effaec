// Package rewrite provides the rule engine that converts lines of
// RedNotebook markup to Markdown.
//
// A Rule locates the occurrences of one syntax construct in a line and
// produces the replacement for each occurrence. The package-level Morph
// function splices replacements into the untouched remainder of the line,
// and a Pipeline folds a line through an ordered rule sequence.
package rewrite

import "github.com/yaklabco/rn2md/pkg/span"

// Rule defines the interface that all rewrite rules must implement.
//
// Rules must:
//   - Return spans sorted by start offset and pairwise non-overlapping.
//   - Return no spans for malformed or partial syntax (silent pass-through);
//     a rule never fails, it only declines to match.
//   - Keep Transform total over any substring FindRanges selected.
//
// Some rules carry state that persists across successive lines of one
// document (list numbering, the first-line flag). A rule instance therefore
// belongs to exactly one document run and must not be shared or reused.
type Rule interface {
	// FindRanges returns the target spans in line to be replaced,
	// in increasing order, non-overlapping.
	FindRanges(line string) []span.Span

	// Transform returns the replacement for one matched substring.
	Transform(match string) string
}

// Apply runs a single rule against a line: locate targets, then splice
// replacements. A rule that finds nothing leaves the line untouched.
func Apply(r Rule, line string) string {
	return Morph(line, r.FindRanges(line), r.Transform)
}
