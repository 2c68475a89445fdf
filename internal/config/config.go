// Package config holds runtime configuration for the seqscan CLI:
// defaults, optional YAML config file loading, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [Default],
// optionally overlaid from a YAML file by [LoadFile], and then mutated
// by flag handling before being passed (by pointer) to the packages
// that need it.
type Config struct {
	// Display and logging.
	ColorMode ColorMode `yaml:"color"`    // Default: "auto".
	LogFile   string    `yaml:"log_file"` // Optional log file path.
	Verbose   bool      `yaml:"verbose"`

	// Scan behavior.
	EstimateSizes bool     `yaml:"estimate_sizes"` // Probe file sizes while scanning.
	Extensions    []string `yaml:"extensions"`     // Scan filter; empty keeps every extension.
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ColorMode:     ColorAuto,
		EstimateSizes: false,
		Verbose:       false,
	}
}

// LoadFile overlays cfg with the YAML document at path. A missing file
// is only an error when explicit is set (the user named the path
// themselves rather than relying on the default location).
func LoadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks enum fields and normalizes the extension filter to
// lowercase without leading dots.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	for i, ext := range c.Extensions {
		c.Extensions[i] = strings.ToLower(strings.TrimPrefix(ext, "."))
	}
	return nil
}

// KeepsExtension reports whether the scan filter admits ext (compared
// case-insensitively, without dot). An empty filter admits everything.
func (c *Config) KeepsExtension(ext string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	ext = strings.ToLower(ext)
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
