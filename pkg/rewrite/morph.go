package rewrite

import (
	"strings"

	"github.com/yaklabco/rn2md/pkg/span"
)

// Morph rewrites line by replacing every target span with transform(span
// text), leaving the text between spans untouched. Targets must be sorted by
// start offset and pairwise non-overlapping; each FindRanges implementation
// guarantees that. With no targets the line is returned verbatim and
// transform is never called.
//
// Every character of line ends up in the output exactly once: either copied
// through an untouched gap or consumed by exactly one transform call.
func Morph(line string, targets []span.Span, transform func(string) string) string {
	if len(targets) == 0 {
		return line
	}

	var out strings.Builder
	out.Grow(len(line))

	// Text before the first target.
	out.WriteString(line[:targets[0].Lo])

	cursor := 0
	for i, t := range targets {
		out.WriteString(transform(t.Of(line)))
		cursor = t.Hi
		// Gap up to the next target, or the tail after the last one.
		next := len(line)
		if i+1 < len(targets) {
			next = targets[i+1].Lo
		}
		out.WriteString(line[cursor:next])
	}

	return out.String()
}
