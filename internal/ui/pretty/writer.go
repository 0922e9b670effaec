package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// defaultRuleWidth is used when the terminal width cannot be determined.
const defaultRuleWidth = 72

// maxRuleWidth caps the header rule so very wide terminals stay readable.
const maxRuleWidth = 100

// Writer prints day-blocks, styling day headers when color is enabled.
type Writer struct {
	out    io.Writer
	styles *Styles
	width  int
}

// NewWriter creates a Writer over out with the given styles.
func NewWriter(out io.Writer, styles *Styles) *Writer {
	return &Writer{
		out:    out,
		styles: styles,
		width:  ruleWidth(out),
	}
}

// WriteDays prints rendered day-blocks separated by blank lines. The first
// line of each block is the day header; it gets the header style and an
// underline rule.
func (w *Writer) WriteDays(blocks []string) error {
	for i, block := range blocks {
		if i > 0 {
			if _, err := fmt.Fprint(w.out, "\n\n\n"); err != nil {
				return err
			}
		}
		if err := w.writeBlock(block); err != nil {
			return err
		}
	}
	if len(blocks) > 0 {
		if _, err := fmt.Fprintln(w.out); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeBlock(block string) error {
	head, body, hasBody := strings.Cut(block, "\n")

	if _, err := fmt.Fprintln(w.out, w.styles.DayHeader.Render(head)); err != nil {
		return err
	}
	rule := strings.Repeat("─", w.width)
	if _, err := fmt.Fprintln(w.out, w.styles.HeaderRule.Render(rule)); err != nil {
		return err
	}
	if !hasBody {
		return nil
	}
	_, err := fmt.Fprint(w.out, w.styles.Body.Render(body))
	return err
}

func ruleWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return defaultRuleWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultRuleWidth
	}
	if width > maxRuleWidth {
		return maxRuleWidth
	}
	return width
}
