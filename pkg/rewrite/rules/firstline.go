package rules

import "github.com/yaklabco/rn2md/pkg/span"

// FirstLineHeaderRule prefixes the first line it processes with "# ",
// turning it into a document title. The rule fires exactly once per
// instance and ignores every later line.
type FirstLineHeaderRule struct {
	done bool
}

// NewFirstLineHeaderRule creates a fresh one-shot first-line rule.
func NewFirstLineHeaderRule() *FirstLineHeaderRule {
	return &FirstLineHeaderRule{}
}

// FindRanges selects the whole line until the rule has fired.
func (r *FirstLineHeaderRule) FindRanges(line string) []span.Span {
	if r.done {
		return nil
	}
	return []span.Span{span.WholeLine(line)}
}

// Transform marks the rule spent and prefixes the header marker.
func (r *FirstLineHeaderRule) Transform(match string) string {
	r.done = true
	return "# " + match
}
