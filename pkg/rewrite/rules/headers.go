package rules

import (
	"strings"

	"github.com/yaklabco/rn2md/pkg/span"
)

// HeaderRule converts whole-line =Title= headers to Markdown # headers.
// The heading depth is the length of the = run plus a fixed padding, so
// with padding 1 a =Title= becomes "## Title". Padding leaves room for the
// per-day "# date" header above journal entries.
type HeaderRule struct {
	padding int
}

// NewHeaderRule creates a header rule with the given depth padding.
func NewHeaderRule(padding int) *HeaderRule {
	return &HeaderRule{padding: padding}
}

// FindRanges matches only when the entire line is symmetric: a run of =
// at the start and an equal-length run at the end, both nonzero, with
// something in between. Anything else, including a line of only = signs,
// is left alone.
func (r *HeaderRule) FindRanges(line string) []span.Span {
	lead := leadingRun(line)
	trail := trailingRun(line)
	if lead == 0 || trail == 0 || lead != trail || lead+trail >= len(line) {
		return nil
	}
	return []span.Span{span.WholeLine(line)}
}

// Transform replaces the = runs with # characters and a separating space.
func (r *HeaderRule) Transform(match string) string {
	level := leadingRun(match)
	return strings.Repeat("#", r.padding+level) + " " + match[level:len(match)-level]
}

func leadingRun(s string) int {
	n := 0
	for n < len(s) && s[n] == '=' {
		n++
	}
	return n
}

func trailingRun(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '=' {
		n++
	}
	return n
}
