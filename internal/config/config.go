// Package config holds runtime configuration: defaults, an optional TOML
// config file layer, CLI overrides, and validation. Defaults match the
// legacy conversion script for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by flag handling
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string `toml:"input_dir"`  // Default: "input mp4".
	OutputDir string `toml:"output_dir"` // Default: "output mp3".

	// Conversion settings.
	Bitrate    string   `toml:"bitrate"`    // Target MP3 bitrate, e.g. "192k".
	Extensions []string `toml:"extensions"` // Video extensions to match.

	// Behavior flags.
	Overwrite bool `toml:"overwrite"` // Overwrite existing outputs instead of skipping.
	Recursive bool `toml:"recursive"` // Search the input tree recursively.
	DryRun    bool `toml:"-"`         // Preview only; never read from config files.

	// Per-job encoder timeout in seconds. 0 disables the timeout,
	// matching the legacy script.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// Display and logging.
	ColorMode ColorMode `toml:"color"` // Default: "auto".
	LogFile   string    `toml:"log_file"`
	Verbose   bool      `toml:"-"`
	CheckOnly bool      `toml:"-"` // Run availability diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// conversion script. Used as the base before config file and flag overrides.
func DefaultConfig() Config {
	return Config{
		InputDir:       "input mp4",
		OutputDir:      "output mp3",
		Bitrate:        "192k",
		Extensions:     []string{".mp4", ".m4v", ".mov"},
		Overwrite:      false,
		Recursive:      false,
		DryRun:         false,
		TimeoutSeconds: 0,
		ColorMode:      ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and value fields and canonicalizes the bitrate.
// When not in CheckOnly mode, it also requires non-empty input and output
// directory paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	normalized, err := normalizeBitrate(c.Bitrate)
	if err != nil {
		return err
	}
	c.Bitrate = normalized

	if len(c.Extensions) == 0 {
		return errors.New("need at least one video extension")
	}
	for _, ext := range c.Extensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}

	if c.TimeoutSeconds < 0 {
		return errors.New("timeout must be zero or positive")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("input and output directories must not be empty")
	}
	return nil
}

// normalizeBitrate validates and canonicalizes user bitrate input.
// Accepted forms: "192", "192k", "192K", "192kbps". Output is "<n>k".
func normalizeBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.New("bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid bitrate %q (use positive Kbps value, e.g. 192k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents a recursive run from
// discovering its own output files. Both arguments must be absolute paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
