package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/rn2md/pkg/span"
)

// linkPattern matches [name ""url""] link syntax: an opening bracket, a
// first character that is not a quote, then (non-greedily) anything up to
// the closing ""]. The name/url split is validated separately so malformed
// bodies pass through untouched.
var (
	linkPattern = regexp.MustCompile(`\[[^"].*?""\]`)
	linkParts   = regexp.MustCompile(`^\[(.*?)\s""(.*)""\]$`)
)

// urlEscaper escapes characters Markdown would otherwise treat as emphasis
// markers inside the link target.
var urlEscaper = strings.NewReplacer("_", `\_`, "*", `\*`)

// LinkRule converts [name ""url""] to [name](url), escaping underscores and
// asterisks in the URL.
type LinkRule struct{}

// NewLinkRule creates a new link rule.
func NewLinkRule() *LinkRule {
	return &LinkRule{}
}

// FindRanges matches link syntax whose body splits into a name and a quoted
// URL. Candidates without the whitespace-quote separator are malformed and
// produce no rewrite.
func (r *LinkRule) FindRanges(line string) []span.Span {
	var out []span.Span
	for _, m := range linkPattern.FindAllStringIndex(line, -1) {
		if !linkParts.MatchString(line[m[0]:m[1]]) {
			continue
		}
		out = append(out, span.Span{Lo: m[0], Hi: m[1]})
	}
	return out
}

// Transform extracts the trimmed name and URL and emits [name](url).
func (r *LinkRule) Transform(match string) string {
	parts := linkParts.FindStringSubmatch(match)
	if parts == nil {
		return match
	}
	name := strings.TrimSpace(parts[1])
	url := strings.TrimSpace(parts[2])
	return "[" + name + "](" + urlEscaper.Replace(url) + ")"
}
