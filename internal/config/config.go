package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"camorg/internal/domain"
)

// Config mirrors the optional camorg.yaml. Empty fields fall back to
// the compiled-in Insta360 defaults, so a partial file only overrides
// what it names.
type Config struct {
	// Extensions managed by the tools, case-insensitive (".insv").
	Extensions []string `yaml:"extensions"`
	// Filenames managed verbatim, case-sensitive ("fileinfo_list.list").
	Filenames []string `yaml:"filenames"`
	// DatePrefixes are the camera-role filename prefixes that carry an
	// embedded capture date (VID_20241011_...).
	DatePrefixes []string `yaml:"date_prefixes"`
	// Subfolder is the canonical subfolder under each date folder.
	Subfolder string `yaml:"subfolder"`
}

// Default returns the Insta360 configuration.
func Default() Config {
	return Config{
		Extensions:   []string{".insv", ".insp", ".lrv"},
		Filenames:    []string{"fileinfo_list.list"},
		DatePrefixes: []string{"VID", "LRV", "IMG"},
		Subfolder:    "insta360",
	}
}

// Path returns the config file path from the CAMORG_CONFIG env var, or
// empty when none is set.
func Path() string {
	return os.Getenv("CAMORG_CONFIG")
}

// Load reads a yaml config file and overlays it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return c.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := Default()
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if len(c.Filenames) == 0 {
		c.Filenames = def.Filenames
	}
	if len(c.DatePrefixes) == 0 {
		c.DatePrefixes = def.DatePrefixes
	}
	if c.Subfolder == "" {
		c.Subfolder = def.Subfolder
	}
	return c
}

// Ruleset builds the immutable domain ruleset from this configuration.
func (c Config) Ruleset() domain.Ruleset {
	return domain.NewRuleset(c.Extensions, c.Filenames, c.DatePrefixes, c.Subfolder)
}
