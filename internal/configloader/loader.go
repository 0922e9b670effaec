// Package configloader resolves the final rn2md configuration by layering
// config files, environment variables, and CLI flags.
package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/rn2md/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips reading RN2MD_* environment variables.
	IgnoreEnv bool

	// Overlay applies CLI flag values on top of the merged result; called
	// last, so flags take highest precedence.
	Overlay func(*config.Config)
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Overlay)
//  2. Environment variables (RN2MD_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.rn2md.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/rn2md/config.yaml)
//  6. System config (/etc/rn2md/config.yaml)
//  7. Defaults
func Load(opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	result := &LoadResult{Config: config.NewConfig()}
	paths := DiscoverPaths(workDir)

	files := []string{paths.System, paths.User}
	if opts.ExplicitPath != "" {
		files = append(files, opts.ExplicitPath)
	} else {
		files = append(files, paths.Project)
	}

	for _, path := range files {
		if path == "" {
			continue
		}
		if err := mergeFile(result, path); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		applyEnv(result)
	}

	if opts.Overlay != nil {
		opts.Overlay(result.Config)
	}

	if err := Validate(result.Config); err != nil {
		return nil, err
	}
	return result, nil
}

func mergeFile(result *LoadResult, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	// Decode into a map first to warn about unknown keys, then strictly
	// into the config struct.
	var keys map[string]any
	if err := yaml.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	for key := range keys {
		if !knownKey(key) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unknown config key %q", path, key))
		}
	}

	if err := yaml.Unmarshal(raw, result.Config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}

func knownKey(key string) bool {
	switch key {
	case "data_dir", "header_padding", "format", "color":
		return true
	default:
		return false
	}
}
