package rules

import (
	"github.com/yaklabco/rn2md/pkg/rewrite"
	"github.com/yaklabco/rn2md/pkg/span"
)

// EscapeUnderscoreRule escapes underscores that sit directly between two
// word characters, so downstream Markdown consumers do not read them as
// emphasis markers. Underscores inside URLs, links, and inline code are
// left alone.
type EscapeUnderscoreRule struct{}

// NewEscapeUnderscoreRule creates a new underscore escaping rule.
func NewEscapeUnderscoreRule() *EscapeUnderscoreRule {
	return &EscapeUnderscoreRule{}
}

// FindRanges scans for word_word underscores byte by byte. Adjacent
// occurrences like a_b_c overlap in their word-character context, which a
// single regex pass would miss, so the neighbors are checked directly.
func (r *EscapeUnderscoreRule) FindRanges(line string) []span.Span {
	var out []span.Span
	for i := 1; i+1 < len(line); i++ {
		if line[i] != '_' || !isWordByte(line[i-1]) || !isWordByte(line[i+1]) {
			continue
		}
		s := span.Span{Lo: i, Hi: i + 1}
		if rewrite.OccursInURL(s, line) || rewrite.OccursInBacktick(s, line) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Transform replaces the underscore with its escaped form.
func (r *EscapeUnderscoreRule) Transform(string) string {
	return `\_`
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
