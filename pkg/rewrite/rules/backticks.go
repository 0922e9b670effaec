package rules

import (
	"regexp"

	"github.com/yaklabco/rn2md/pkg/rewrite"
	"github.com/yaklabco/rn2md/pkg/span"
)

// doubleBacktickPattern matches ``code`` spans non-greedily.
var doubleBacktickPattern = regexp.MustCompile("``.*?``")

// BacktickRule unwraps ``code`` to `code`, stripping exactly one backtick
// from each side. Double backticks are how the dialect nests markup such as
// strikethrough around code.
type BacktickRule struct{}

// NewBacktickRule creates a new backtick unwrapping rule.
func NewBacktickRule() *BacktickRule {
	return &BacktickRule{}
}

// FindRanges matches double-backtick spans outside URLs and links.
func (r *BacktickRule) FindRanges(line string) []span.Span {
	var out []span.Span
	for _, m := range doubleBacktickPattern.FindAllStringIndex(line, -1) {
		s := span.Span{Lo: m[0], Hi: m[1]}
		if rewrite.OccursInURL(s, line) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Transform drops the outer backtick on each side.
func (r *BacktickRule) Transform(match string) string {
	return match[1 : len(match)-1]
}
