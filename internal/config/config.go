// Package config loads the optional pikser config file and the .env file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pikser/internal/platform"
)

// Config is the on-disk configuration. Every field is optional; the zero
// value (plus defaults) reproduces the tool's built-in behavior.
type Config struct {
	Images ImagesConfig `yaml:"images"`
	Inline InlineConfig `yaml:"inline"`
	// Viewers maps an environment name (posix, wsl, windows, darwin) to a
	// command argv prefix tried before the built-in candidates.
	Viewers map[string][]string `yaml:"viewers"`
}

// ImagesConfig tunes directory enumeration.
type ImagesConfig struct {
	// ExtraExtensions extends the built-in image extension set.
	ExtraExtensions []string `yaml:"extra_extensions"`
	// Pattern is a default doublestar glob; the --pattern flag overrides it.
	Pattern string `yaml:"pattern"`
}

// InlineConfig controls in-terminal rendering.
type InlineConfig struct {
	// Mode is "auto" (try inline first, fall back to the external viewer)
	// or "off".
	Mode string `yaml:"mode"`
	// Tool pins a specific inline renderer.
	Tool string `yaml:"tool"`
}

// Load reads a YAML config file and applies defaults. A missing file is not
// an error; it yields the default configuration.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Inline.Mode == "" {
		cfg.Inline.Mode = "auto"
	}
}

func (c *Config) validate() error {
	if c.Inline.Mode != "auto" && c.Inline.Mode != "off" {
		return fmt.Errorf("inline.mode must be auto or off, got %q", c.Inline.Mode)
	}
	for name := range c.Viewers {
		if _, ok := platform.ParseKind(name); !ok {
			return fmt.Errorf("unknown viewers key %q", name)
		}
	}
	return nil
}

// ViewerOverrides resolves the Viewers map into platform kinds. Empty argv
// entries are skipped.
func (c *Config) ViewerOverrides() map[platform.Kind][]string {
	if len(c.Viewers) == 0 {
		return nil
	}
	out := make(map[platform.Kind][]string, len(c.Viewers))
	for name, argv := range c.Viewers {
		kind, ok := platform.ParseKind(name)
		if !ok || len(argv) == 0 {
			continue
		}
		out[kind] = argv
	}
	return out
}
