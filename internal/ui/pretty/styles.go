// Package pretty provides Lipgloss-based styled output for converted
// journal entries.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains the styled renderers for terminal output.
type Styles struct {
	// DayHeader styles the "# <date>" line of each day-block.
	DayHeader lipgloss.Style

	// HeaderRule styles the horizontal rule drawn under a day header.
	HeaderRule lipgloss.Style

	// Body styles entry body lines.
	Body lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{
			DayHeader:  lipgloss.NewStyle(),
			HeaderRule: lipgloss.NewStyle(),
			Body:       lipgloss.NewStyle(),
		}
	}
	return &Styles{
		DayHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		HeaderRule: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Body:       lipgloss.NewStyle(),
	}
}

// ColorEnabled resolves a color mode string ("auto", "always", "never")
// against whether w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
