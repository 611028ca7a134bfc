package config

// Config represents the complete docsurf configuration.
// It can be loaded from .docsurf/config.yml with environment variable overrides.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
	Docs    DocsConfig    `yaml:"docs" mapstructure:"docs"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Watch   WatchConfig   `yaml:"watch" mapstructure:"watch"`
}

// PathsConfig defines which files are extraction roots and which to ignore.
type PathsConfig struct {
	Sources []string `yaml:"sources" mapstructure:"sources"` // glob patterns for root source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to ignore
}

// DocsConfig defines the doc-file naming convention.
type DocsConfig struct {
	SiblingExt  string `yaml:"sibling_ext" mapstructure:"sibling_ext"`   // extension of a sibling doc file
	DefaultName string `yaml:"default_name" mapstructure:"default_name"` // directory-level default doc file
}

// ExtractConfig holds the default export filtering options.
type ExtractConfig struct {
	FilterInternal          bool `yaml:"filter_internal" mapstructure:"filter_internal"`
	FilterUnderscoreExports bool `yaml:"filter_underscore_exports" mapstructure:"filter_underscore_exports"`
}

// CacheConfig sizes the extraction cache used in watch mode.
type CacheConfig struct {
	Enabled  bool `yaml:"enabled" mapstructure:"enabled"`
	Capacity int  `yaml:"capacity" mapstructure:"capacity"` // max cached root extractions
}

// WatchConfig tunes the file watcher.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" mapstructure:"debounce_ms"` // quiet period before re-extracting
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Sources: []string{
				"**/index.ts",
				"**/index.tsx",
			},
			Ignore: []string{
				"node_modules/**",
				"dist/**",
				"build/**",
				"**/*.test.ts",
				"**/*.spec.ts",
			},
		},
		Docs: DocsConfig{
			SiblingExt:  ".md",
			DefaultName: "README.md",
		},
		Extract: ExtractConfig{
			FilterInternal:          true,
			FilterUnderscoreExports: false,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 1024,
		},
		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}
