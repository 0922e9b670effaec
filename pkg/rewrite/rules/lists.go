package rules

import (
	"regexp"
	"strconv"

	"github.com/yaklabco/rn2md/pkg/span"
)

// listItemPattern matches optional leading whitespace, a + or - list
// marker, and the space after it. Group 1 is the marker character.
var listItemPattern = regexp.MustCompile(`^\s*(\+|-)\s`)

// ListRule renumbers + list items into ordered Markdown list items, keeping
// one counter per indentation depth across the lines of a document.
// - items stay unnumbered bullets and are passed through untouched.
//
// The rule is stateful: it tolerates a single non-list line (blank
// separators inside a list) but two consecutive non-list lines reset all
// counters. Moving to a shallower depth truncates the deeper counters;
// moving deeper zero-fills the depths in between.
type ListRule struct {
	history   []int
	missedOne bool
}

// NewListRule creates a list renumbering rule with empty history.
func NewListRule() *ListRule {
	return &ListRule{}
}

// FindRanges returns the span of the + marker when the line is a numbered
// list item, after updating the counter state. Non-list lines and - bullets
// produce no rewrite.
func (r *ListRule) FindRanges(line string) []span.Span {
	m := listItemPattern.FindStringSubmatchIndex(line)
	if m == nil {
		r.recordMiss()
		return nil
	}

	markerLo, markerHi := m[2], m[3]
	r.resizeHistory(markerHi)
	if line[markerLo] != '+' {
		return nil
	}

	r.history[len(r.history)-1]++
	return []span.Span{{Lo: markerLo, Hi: markerHi}}
}

// Transform replaces the + marker with the current counter at its depth.
func (r *ListRule) Transform(string) string {
	return strconv.Itoa(r.history[len(r.history)-1]) + "."
}

func (r *ListRule) recordMiss() {
	if r.missedOne {
		r.history = nil
	} else {
		r.missedOne = true
	}
}

// resizeHistory trims or zero-extends the counter stack so its last slot
// corresponds to the current item's depth.
func (r *ListRule) resizeHistory(size int) {
	r.missedOne = false
	if size <= len(r.history) {
		r.history = r.history[:size]
		return
	}
	for len(r.history) < size {
		r.history = append(r.history, 0)
	}
}
