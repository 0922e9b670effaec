package rules

import (
	"regexp"

	"github.com/yaklabco/rn2md/pkg/span"
)

// imagePattern matches [""file://path"".ext] image syntax for the picture
// extensions RedNotebook embeds. Group 1 is the URL, group 2 the extension
// with its dot.
var imagePattern = regexp.MustCompile(`\[""(file://.*?)""(\.(?:jpg|tif|png|gif))\]`)

// ImageRule converts [""file://pic"".jpg] to ![](file://pic.jpg) with empty
// alt text.
type ImageRule struct{}

// NewImageRule creates a new image rule.
func NewImageRule() *ImageRule {
	return &ImageRule{}
}

// FindRanges matches every image occurrence in the line.
func (r *ImageRule) FindRanges(line string) []span.Span {
	var out []span.Span
	for _, m := range imagePattern.FindAllStringIndex(line, -1) {
		out = append(out, span.Span{Lo: m[0], Hi: m[1]})
	}
	return out
}

// Transform reassembles the captured URL and extension into a Markdown
// image with empty alt text.
func (r *ImageRule) Transform(match string) string {
	parts := imagePattern.FindStringSubmatch(match)
	if parts == nil {
		return match
	}
	return "![](" + parts[1] + parts[2] + ")"
}
