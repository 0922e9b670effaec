package rules

import (
	"regexp"

	"github.com/yaklabco/rn2md/pkg/span"
)

var strikethroughDelimiter = regexp.MustCompile(`--`)

// StrikethroughRule converts --text-- to ~~text~~.
type StrikethroughRule struct{}

// NewStrikethroughRule creates a new strikethrough rule.
func NewStrikethroughRule() *StrikethroughRule {
	return &StrikethroughRule{}
}

// FindRanges pairs up consecutive -- delimiters with the same guard and
// pairing scheme as italics.
func (r *StrikethroughRule) FindRanges(line string) []span.Span {
	return pairDelimiters(strikethroughDelimiter, line)
}

// Transform wraps the delimited text in double tildes.
func (r *StrikethroughRule) Transform(match string) string {
	return "~~" + match[2:len(match)-2] + "~~"
}
