package rules

import "github.com/yaklabco/rn2md/pkg/rewrite"

// Standard builds the pipeline used for journal entries: headers first (the
// whole-line match must see the raw line), then bracketed constructs, then
// inline emphasis, list numbering, and finally underscore escaping over
// whatever the earlier stages produced.
//
// Stateful rules are created here, so every call yields a pipeline that is
// safe for exactly one document.
func Standard(headerPadding int) *rewrite.Pipeline {
	return rewrite.NewPipeline(
		NewHeaderRule(headerPadding),
		NewImageRule(),
		NewLinkRule(),
		NewItalicsRule(),
		NewListRule(),
		NewStrikethroughRule(),
		NewBacktickRule(),
		NewEscapeUnderscoreRule(),
	)
}

// Stream builds the pipeline for converting a raw line stream, optionally
// promoting the first line to a document header.
func Stream(headerPadding int, firstLineHeader bool) *rewrite.Pipeline {
	if !firstLineHeader {
		return Standard(headerPadding)
	}
	return rewrite.NewPipeline(
		NewHeaderRule(headerPadding),
		NewImageRule(),
		NewLinkRule(),
		NewItalicsRule(),
		NewListRule(),
		NewStrikethroughRule(),
		NewBacktickRule(),
		NewEscapeUnderscoreRule(),
		// Last, so it titles the already-converted first line.
		NewFirstLineHeaderRule(),
	)
}
