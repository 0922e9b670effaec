package rewrite

import (
	"regexp"

	"github.com/yaklabco/rn2md/pkg/span"
)

// Guard patterns. Each guard re-scans the entire line on every call rather
// than caching matches: earlier pipeline stages shift offsets between rules,
// so cached positions would be stale.
var (
	// urlPattern recognizes bare URL literals: an http(s)/ftp(s)/file scheme
	// followed by a dotted domain name or an IPv4 address, with an optional
	// port.
	urlPattern = regexp.MustCompile(`(?i)(?:http|file|ftp)s?://` +
		`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+` +
		`(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?`)

	// linkPattern recognizes already-formed Markdown links.
	linkPattern = regexp.MustCompile(`\[.*?\]\(.*?\)`)

	// backtickPattern recognizes inline code delimited by single backticks.
	backtickPattern = regexp.MustCompile("`.*?`")
)

// OccursInURL reports whether candidate intersects a URL literal or an
// already-formed Markdown link anywhere in line. Rules consult it so that
// text which is already a URL, or already converted, is not mangled again.
func OccursInURL(candidate span.Span, line string) bool {
	return anyMatchIntersects(urlPattern, candidate, line) ||
		anyMatchIntersects(linkPattern, candidate, line)
}

// OccursInBacktick reports whether candidate intersects a backtick-delimited
// inline-code span in line. Literal code is never reinterpreted as markup.
func OccursInBacktick(candidate span.Span, line string) bool {
	return anyMatchIntersects(backtickPattern, candidate, line)
}

func anyMatchIntersects(re *regexp.Regexp, candidate span.Span, line string) bool {
	for _, m := range re.FindAllStringIndex(line, -1) {
		if span.Intersects(candidate, span.Span{Lo: m[0], Hi: m[1]}) {
			return true
		}
	}
	return false
}
