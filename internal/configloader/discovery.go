package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/rn2md/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/rn2md/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.rn2md.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names searched for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".rn2md.yml",
	".rn2md.yaml",
	"rn2md.yml",
	"rn2md.yaml",
}

// vcsRootMarkers are directories that stop the upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
//   - System config at /etc/rn2md/config.{yaml,yml}
//   - User config at $XDG_CONFIG_HOME/rn2md/config.{yaml,yml}
//   - Project config by searching upward from workDir for .rn2md.{yml,yaml},
//     stopping at a VCS root or the filesystem root.
func DiscoverPaths(workDir string) ConfigPaths {
	return ConfigPaths{
		System:  firstExisting("/etc/rn2md", "config.yaml", "config.yml"),
		User:    discoverUserConfig(),
		Project: discoverProjectConfig(workDir),
	}
}

func discoverUserConfig() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return firstExisting(filepath.Join(base, "rn2md"), "config.yaml", "config.yml")
}

func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		if p := firstExisting(dir, projectConfigFiles...); p != "" {
			return p
		}
		if isVCSRoot(dir) {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func firstExisting(dir string, names ...string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
