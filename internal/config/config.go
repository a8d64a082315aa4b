// Package config loads and watches the lineview preferences file.
//
// Preferences live in a single TOML file. A missing file is not an
// error; the defaults apply. Out-of-range values are clamped to usable
// ones rather than rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the pager preferences.
type Config struct {
	Scroll ScrollConfig `toml:"scroll"`
	Wrap   WrapConfig   `toml:"wrap"`
	Log    LogConfig    `toml:"log"`
}

// ScrollConfig controls scrolling behavior.
type ScrollConfig struct {
	// Step is the number of lines a single scroll moves.
	Step int `toml:"step"`

	// PageOverlap is the number of lines two consecutive pages share.
	PageOverlap int `toml:"page_overlap"`

	// CenterOnJump centers the region after top and bottom jumps.
	CenterOnJump bool `toml:"center_on_jump"`
}

// WrapConfig controls soft wrapping.
type WrapConfig struct {
	Enabled  bool `toml:"enabled"`
	TabWidth int  `toml:"tab_width"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Scroll: ScrollConfig{
			Step:         1,
			PageOverlap:  1,
			CenterOnJump: false,
		},
		Wrap: WrapConfig{
			Enabled:  false,
			TabWidth: 4,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Validate clamps out-of-range values to usable ones.
func (c *Config) Validate() {
	if c.Scroll.Step < 1 {
		c.Scroll.Step = 1
	}
	if c.Scroll.PageOverlap < 0 {
		c.Scroll.PageOverlap = 0
	}
	if c.Wrap.TabWidth < 1 {
		c.Wrap.TabWidth = 1
	}
}

// Load reads preferences from the given path. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// LoadFromReader reads preferences from an io.Reader.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Default(), fmt.Errorf("reading config: %w", err)
	}

	return parse("<reader>", data)
}

// parse unmarshals TOML data over the defaults.
func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			perr.Line, perr.Column = decodeErr.Position()
		}
		return Default(), perr
	}

	cfg.Validate()
	return cfg, nil
}

// DefaultPath returns the standard preferences location. The
// LINEVIEW_CONFIG environment variable overrides it.
func DefaultPath() string {
	if p := os.Getenv("LINEVIEW_CONFIG"); p != "" {
		return p
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lineview", "config.toml")
}

// ParseError represents an error while parsing a preferences file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
