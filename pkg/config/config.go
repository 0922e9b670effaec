// Package config defines core configuration types for rn2md.
// These types are pure data structures with no dependency on the loader.
package config

import (
	"os"
	"path/filepath"
)

// OutputFormat specifies how converted entries are written.
type OutputFormat string

const (
	// FormatText writes converted Markdown to stdout.
	FormatText OutputFormat = "text"

	// FormatHTML renders the converted Markdown to HTML.
	FormatHTML OutputFormat = "html"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatHTML:
		return true
	default:
		return false
	}
}

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for rn2md.
type Config struct {
	// DataDir is the RedNotebook data directory holding the per-month
	// YYYY-MM.txt archives.
	DataDir string `yaml:"data_dir"`

	// HeaderPadding is added to every =Title= run length when computing
	// Markdown heading depth, leaving room for the per-day date header.
	HeaderPadding int `yaml:"header_padding"`

	// Format selects the output format.
	Format OutputFormat `yaml:"format"`

	// Color controls styled terminal output.
	Color ColorMode `yaml:"color"`
}

// DefaultDataDir returns the standard RedNotebook data location.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".rednotebook", "data")
	}
	return filepath.Join(home, ".rednotebook", "data")
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		DataDir:       DefaultDataDir(),
		HeaderPadding: 1,
		Format:        FormatText,
		Color:         ColorAuto,
	}
}
