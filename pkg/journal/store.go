// Package journal loads RedNotebook month archives into a date-keyed store.
//
// RedNotebook keeps one YAML file per month, named YYYY-MM.txt, mapping day
// numbers to an entry document whose "text" key holds the raw dialect text
// for that day.
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoDataDir indicates the archive directory does not exist.
var ErrNoDataDir = errors.New("journal data directory not found")

// monthFilePattern matches archive file names like 2023-07.txt.
var monthFilePattern = regexp.MustCompile(`^(\d{4})-(\d{2})\.txt$`)

// dayEntry is the per-day document inside a month archive.
type dayEntry struct {
	Text string `yaml:"text"`
}

// Store holds every journal entry found in a data directory, keyed by date.
type Store struct {
	entries map[time.Time]string
}

// Open reads every month archive under dir and builds the store. Files
// whose names are not YYYY-MM.txt are skipped; a file that exists but does
// not decode is an error naming the file.
func Open(dir string) (*Store, error) {
	names, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDataDir, dir)
		}
		return nil, fmt.Errorf("read journal directory: %w", err)
	}

	s := &Store{entries: make(map[time.Time]string)}
	for _, e := range names {
		if e.IsDir() {
			continue
		}
		m := monthFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := s.loadMonth(path, year, time.Month(month)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) loadMonth(path string, year int, month time.Month) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read month archive %s: %w", path, err)
	}

	var days map[int]dayEntry
	if err := yaml.Unmarshal(raw, &days); err != nil {
		return fmt.Errorf("decode month archive %s: %w", path, err)
	}

	for day, entry := range days {
		s.entries[Date(year, month, day)] = entry.Text
	}
	return nil
}

// Date normalizes a calendar date to the store's key form: midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize maps an arbitrary time to its store key.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Entry returns the raw dialect text for a date, if an entry exists.
func (s *Store) Entry(date time.Time) (string, bool) {
	text, ok := s.entries[Normalize(date)]
	return text, ok
}

// Dates returns every date with an entry, in ascending order.
func (s *Store) Dates() []time.Time {
	out := make([]time.Time, 0, len(s.entries))
	for d := range s.entries {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}
