package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied before any file is read.
const (
	DefaultTabWidth       = 8
	DefaultUntitledName   = "Untitled"
	DefaultMessageTimeout = 3
)

// Config holds the editor settings read from the TOML config file.
type Config struct {
	// TabWidth is the rendered width of a tab stop.
	TabWidth int `toml:"tab_width"`

	// LineNumbers toggles the gutter.
	LineNumbers bool `toml:"line_numbers"`

	// UntitledName is the display name for buffers with no file.
	UntitledName string `toml:"untitled_name"`

	// MessageTimeout is how many seconds status messages linger.
	MessageTimeout int `toml:"message_timeout"`

	// LineEnding forces "lf" or "crlf" on save; empty keeps whatever
	// the file came with.
	LineEnding string `toml:"line_ending"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TabWidth:       DefaultTabWidth,
		LineNumbers:    true,
		UntitledName:   DefaultUntitledName,
		MessageTimeout: DefaultMessageTimeout,
	}
}

// Path returns the user config file location, honoring
// XDG_CONFIG_HOME the way the rest of the ecosystem does.
func Path() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "tern", "config.toml")
}

// Load reads the config file at path, layered over the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	switch c.LineEnding {
	case "", "lf", "crlf":
	default:
		return fmt.Errorf("line_ending must be \"lf\" or \"crlf\", got %q", c.LineEnding)
	}
	return nil
}
