package rules

import (
	"regexp"

	"github.com/yaklabco/rn2md/pkg/rewrite"
	"github.com/yaklabco/rn2md/pkg/span"
)

var italicsDelimiter = regexp.MustCompile(`//`)

// ItalicsRule converts //text// to _text_.
type ItalicsRule struct{}

// NewItalicsRule creates a new italics rule.
func NewItalicsRule() *ItalicsRule {
	return &ItalicsRule{}
}

// FindRanges pairs up consecutive // delimiters that fall outside URLs,
// links, and inline code. An odd trailing delimiter is left unpaired and
// ignored.
func (r *ItalicsRule) FindRanges(line string) []span.Span {
	return pairDelimiters(italicsDelimiter, line)
}

// Transform wraps the delimited text in single underscores.
func (r *ItalicsRule) Transform(match string) string {
	return "_" + match[2:len(match)-2] + "_"
}

// pairDelimiters finds all guarded occurrences of a two-character delimiter
// and groups them into (open, close) pairs, returning one span per pair
// stretching from the open delimiter's start to the close delimiter's end.
func pairDelimiters(delim *regexp.Regexp, line string) []span.Span {
	var hits []span.Span
	for _, m := range delim.FindAllStringIndex(line, -1) {
		s := span.Span{Lo: m[0], Hi: m[1]}
		if rewrite.OccursInURL(s, line) || rewrite.OccursInBacktick(s, line) {
			continue
		}
		hits = append(hits, s)
	}

	var out []span.Span
	for i := 0; i+1 < len(hits); i += 2 {
		out = append(out, span.Span{Lo: hits[i].Lo, Hi: hits[i+1].Hi})
	}
	return out
}
