// Package render turns journal entries into Markdown day-blocks.
package render

import (
	"strings"
	"time"

	"github.com/yaklabco/rn2md/pkg/rewrite"
	"github.com/yaklabco/rn2md/pkg/rewrite/rules"
)

// headerLayout formats the per-day header date, e.g. "Jul 14, 2023".
const headerLayout = "Jan 02, 2006"

// dayJoiner separates day-blocks so downstream consumers see each day as a
// blank-line-delimited section.
const dayJoiner = "\n\n\n"

// Formatter converts dated entries. Each day gets a fresh rewrite pipeline
// so stateful rules never leak numbering or first-line behavior between
// days.
type Formatter struct {
	headerPadding int
}

// NewFormatter creates a Formatter with the given header depth padding.
func NewFormatter(headerPadding int) *Formatter {
	return &Formatter{headerPadding: headerPadding}
}

// FormatDay renders one day-block: a "# <date>" header, then the entry's
// lines right-trimmed and converted. A day with an empty body is just the
// header.
func (f *Formatter) FormatDay(day time.Time, text string) string {
	pipeline := rules.Standard(f.headerPadding)

	head := "# " + day.Format(headerLayout)
	body := ConvertLines(pipeline, text)
	if body == "" {
		return head
	}
	return head + "\n" + body
}

// ConvertLines feeds each line of text through the pipeline, right-trimming
// first, and joins the results with newlines.
func ConvertLines(pipeline *rewrite.Pipeline, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pipeline.Run(strings.TrimRight(line, " \t\r"))
	}
	return strings.Join(lines, "\n")
}

// JoinDays joins rendered day-blocks with the triple-newline separator.
func JoinDays(blocks []string) string {
	return strings.Join(blocks, dayJoiner)
}
