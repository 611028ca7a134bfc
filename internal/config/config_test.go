package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Contains(t, cfg.Paths.Sources, "**/index.ts")
	assert.Contains(t, cfg.Paths.Ignore, "node_modules/**")
	assert.Equal(t, ".md", cfg.Docs.SiblingExt)
	assert.Equal(t, "README.md", cfg.Docs.DefaultName)
	assert.True(t, cfg.Extract.FilterInternal)
	assert.False(t, cfg.Extract.FilterUnderscoreExports)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 1024, cfg.Cache.Capacity)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)

	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "no sources",
			mutate:  func(c *Config) { c.Paths.Sources = nil },
			wantErr: ErrNoSources,
		},
		{
			name:    "sibling ext without dot",
			mutate:  func(c *Config) { c.Docs.SiblingExt = "md" },
			wantErr: ErrInvalidSiblingExt,
		},
		{
			name:    "empty default doc name",
			mutate:  func(c *Config) { c.Docs.DefaultName = "" },
			wantErr: ErrEmptyDefaultDocName,
		},
		{
			name:    "zero cache capacity while enabled",
			mutate:  func(c *Config) { c.Cache.Capacity = 0 },
			wantErr: ErrInvalidCapacity,
		},
		{
			name: "zero capacity is fine when cache disabled",
			mutate: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.Capacity = 0
			},
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.Watch.DebounceMs = -1 },
			wantErr: ErrInvalidDebounce,
		},
		{
			name:   "empty sibling ext disables sibling lookup",
			mutate: func(c *Config) { c.Docs.SiblingExt = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Paths.Sources = nil
	cfg.Docs.DefaultName = ""
	cfg.Watch.DebounceMs = -5

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrNoSources)
	assert.ErrorIs(t, err, ErrEmptyDefaultDocName)
	assert.ErrorIs(t, err, ErrInvalidDebounce)
}

func TestLoaderDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfigFromDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoaderReadsConfigFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".docsurf")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(`
paths:
  sources:
    - "src/index.ts"
docs:
  sibling_ext: ".docs.md"
extract:
  filter_underscore_exports: true
watch:
  debounce_ms: 250
`), 0o644))

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/index.ts"}, cfg.Paths.Sources)
	assert.Equal(t, ".docs.md", cfg.Docs.SiblingExt)
	assert.True(t, cfg.Extract.FilterUnderscoreExports)
	assert.Equal(t, 250, cfg.Watch.DebounceMs)

	// Untouched sections keep their defaults.
	assert.Equal(t, "README.md", cfg.Docs.DefaultName)
	assert.Equal(t, 1024, cfg.Cache.Capacity)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".docsurf")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(`
watch:
  debounce_ms: 250
`), 0o644))

	t.Setenv("DOCSURF_WATCH_DEBOUNCE_MS", "100")
	t.Setenv("DOCSURF_CACHE_ENABLED", "false")

	cfg, err := LoadConfigFromDir(root)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Watch.DebounceMs)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".docsurf")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(`
watch:
  debounce_ms: -10
`), 0o644))

	_, err := LoadConfigFromDir(root)
	assert.ErrorIs(t, err, ErrInvalidDebounce)
}
