package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rn2md/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenNothingFound(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	// Marker stops the upward search from escaping the temp dir.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Empty(t, result.LoadedFrom)
	assert.Equal(t, 1, result.Config.HeaderPadding)
	assert.Equal(t, config.FormatText, result.Config.Format)
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	path := writeConfig(t, dir, ".rn2md.yml", "data_dir: /tmp/journal\nheader_padding: 2\n")

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, "/tmp/journal", result.Config.DataDir)
	assert.Equal(t, 2, result.Config.HeaderPadding)
}

func TestLoadProjectConfigFoundUpward(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, root, ".rn2md.yml", "header_padding: 3\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	result, err := Load(LoadOptions{WorkingDir: nested, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Config.HeaderPadding)
}

func TestLoadExplicitPathSkipsProjectConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".rn2md.yml", "header_padding: 9\n")
	explicit := writeConfig(t, dir, "other.yml", "header_padding: 4\n")

	result, err := Load(LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
	assert.Equal(t, 4, result.Config.HeaderPadding)
}

func TestLoadOverlayWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".rn2md.yml", "format: html\n")

	result, err := Load(LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
		Overlay: func(cfg *config.Config) {
			cfg.Format = config.FormatText
		},
	})
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, result.Config.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".rn2md.yml", "header_padding: 2\n")
	t.Setenv(envHeaderPadding, "5")
	t.Setenv(envDataDir, "")
	t.Setenv(envFormat, "")
	t.Setenv(envColor, "")

	result, err := Load(LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Config.HeaderPadding)
}

func TestLoadWarnsOnUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".rn2md.yml", "data_dirr: /oops\n")

	result, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "data_dirr")
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeConfig(t, dir, ".rn2md.yml", "format: xml\n")

	_, err := Load(LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*config.Config) {},
			wantErr: false,
		},
		{
			name:    "empty data dir",
			mutate:  func(c *config.Config) { c.DataDir = "" },
			wantErr: true,
		},
		{
			name:    "negative padding",
			mutate:  func(c *config.Config) { c.HeaderPadding = -1 },
			wantErr: true,
		},
		{
			name:    "bad color mode",
			mutate:  func(c *config.Config) { c.Color = "sometimes" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
