package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when a configuration file's extension
// is not a recognized format.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config holds the editor settings that shape text storage and layout.
type Config struct {
	// EstimatedLineLength is the average line length assumed when
	// targeting lines in large-file mode.
	EstimatedLineLength int `toml:"estimated_line_length" yaml:"estimated_line_length"`

	// LargeFileThreshold is the span size in bytes above which line
	// feeds are no longer counted eagerly.
	LargeFileThreshold int `toml:"large_file_threshold" yaml:"large_file_threshold"`

	// TabWidth is the number of columns a tab expands to.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// WrapWidth is the soft-wrap width in columns. Zero disables
	// wrapping.
	WrapWidth int `toml:"wrap_width" yaml:"wrap_width"`

	// ScrollMargin is how many lines to keep visible around the cursor
	// when scrolling.
	ScrollMargin int `toml:"scroll_margin" yaml:"scroll_margin"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		EstimatedLineLength: 80,
		LargeFileThreshold:  16 << 20,
		TabWidth:            4,
		WrapWidth:           0,
		ScrollMargin:        2,
	}
}

// Validate normalizes out-of-range values back to their defaults
// rather than failing; a broken config file should degrade, not stop
// the editor.
func (c *Config) Validate() {
	def := Default()
	if c.EstimatedLineLength < 1 {
		c.EstimatedLineLength = def.EstimatedLineLength
	}
	if c.LargeFileThreshold < 1 {
		c.LargeFileThreshold = def.LargeFileThreshold
	}
	if c.TabWidth < 1 {
		c.TabWidth = def.TabWidth
	}
	if c.WrapWidth < 0 {
		c.WrapWidth = 0
	}
	if c.ScrollMargin < 0 {
		c.ScrollMargin = 0
	}
}

// Load reads a configuration file, layering it over the defaults. A
// missing file returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := Parse(data, filepath.Ext(path), &cfg); err != nil {
		return Default(), err
	}
	cfg.Validate()
	return cfg, nil
}

// Parse decodes configuration data in the format named by ext
// (".toml", ".yaml", or ".yml") into cfg.
func Parse(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return nil
}
