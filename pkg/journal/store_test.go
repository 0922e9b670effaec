package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestOpenLoadsMonthArchives(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "2023-07.txt", ""+
		"3:\n"+
		"  text: |-\n"+
		"    =Trip=\n"+
		"    + pack\n"+
		"14:\n"+
		"  text: a one liner\n")
	writeArchive(t, dir, "2023-08.txt", ""+
		"1:\n"+
		"  text: august entry\n")

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	text, ok := s.Entry(Date(2023, time.July, 3))
	require.True(t, ok)
	assert.Equal(t, "=Trip=\n+ pack", text)

	text, ok = s.Entry(Date(2023, time.July, 14))
	require.True(t, ok)
	assert.Equal(t, "a one liner", text)

	_, ok = s.Entry(Date(2023, time.July, 4))
	assert.False(t, ok)
}

func TestOpenSkipsUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "2023-07.txt", "1:\n  text: entry\n")
	writeArchive(t, dir, "notes.txt", "not an archive")
	writeArchive(t, dir, "2023-13.txt", "1:\n  text: bad month\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup"), 0o755))

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNoDataDir)
}

func TestOpenMalformedArchive(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "2023-07.txt", "{{not yaml")

	_, err := Open(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2023-07.txt")
}

func TestDates(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "2023-08.txt", "2:\n  text: b\n1:\n  text: a\n")
	writeArchive(t, dir, "2023-07.txt", "31:\n  text: c\n")

	s, err := Open(dir)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		Date(2023, time.July, 31),
		Date(2023, time.August, 1),
		Date(2023, time.August, 2),
	}, s.Dates())
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	got := Normalize(time.Date(2023, time.May, 9, 17, 30, 0, 0, loc))
	assert.Equal(t, Date(2023, time.May, 9), got)
}
