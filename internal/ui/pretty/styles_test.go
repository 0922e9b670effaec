package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled("always", &buf))
	assert.False(t, ColorEnabled("never", &buf))
	// A bytes.Buffer is not a terminal.
	assert.False(t, ColorEnabled("auto", &buf))
}

func TestWriterWriteDays(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, NewStyles(false))

	err := w.WriteDays([]string{
		"# Jul 14, 2023\n1. pack",
		"# Jul 15, 2023",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# Jul 14, 2023")
	assert.Contains(t, out, "1. pack")
	assert.Contains(t, out, "# Jul 15, 2023")
	assert.Contains(t, out, strings.Repeat("─", defaultRuleWidth))
	// Day-blocks stay blank-line separated.
	assert.Contains(t, out, "\n\n\n")
}

func TestWriterNoBlocks(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, NewStyles(false))
	require.NoError(t, w.WriteDays(nil))
	assert.Empty(t, buf.String())
}
