// Package config holds runtime configuration: defaults, the optional YAML
// config file, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/backmassage/kebab-rename/internal/naming"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] when a config file is given, then by [Flags.Apply]
// for flags set on the command line.
type Config struct {
	// Target (set from the positional arg).
	TargetDir string // Default: ".".

	// Conversion.
	Style      naming.Style // Default: kebab.
	Recursive  bool
	Extensions []string // Normalized ".ext" values; empty means no filter.

	// Behavior flags.
	Yes    bool // Apply the plan instead of previewing it.
	DryRun bool // Preview only; wins over Yes.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// Outputs.
	ConfigFile string // YAML file the settings were loaded from, if any.
	Journal    string // SQLite journal path; empty disables journaling.
	Report     string // Markdown (.md) or HTML (.html) report path.
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		TargetDir: ".",
		Style:     naming.StyleKebab,
		ColorMode: ColorAuto,
	}
}

// Apply reports whether renames should actually be executed. --dry-run
// always wins over --yes.
func (c *Config) Apply() bool { return c.Yes && !c.DryRun }

// ExtensionSet returns Extensions as a lookup set for the planner, or nil
// when no filter is configured.
func (c *Config) ExtensionSet() map[string]bool {
	if len(c.Extensions) == 0 {
		return nil
	}
	set := make(map[string]bool, len(c.Extensions))
	for _, e := range c.Extensions {
		set[e] = true
	}
	return set
}

// Validate checks enum fields and the target path.
func (c *Config) Validate() error {
	if !c.Style.Valid() {
		return fmt.Errorf("invalid style %q (use 'kebab' or 'camel')", c.Style)
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.TargetDir == "" {
		return errors.New("target directory must not be empty")
	}
	for _, e := range c.Extensions {
		if e == "." || !strings.HasPrefix(e, ".") || e != strings.ToLower(e) {
			return fmt.Errorf("invalid extension %q", e)
		}
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// ParseExtensions turns a comma-separated list such as ".jpg, PNG" into
// normalized, de-duplicated, sorted extensions: [".jpg", ".png"].
func ParseExtensions(raw string) []string {
	return NormalizeExtensions(strings.Split(raw, ","))
}

// NormalizeExtensions trims, lower-cases and dot-prefixes each value and
// drops empties and duplicates.
func NormalizeExtensions(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || v == "." {
			continue
		}
		if !strings.HasPrefix(v, ".") {
			v = "." + v
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ParseStyle accepts the style names and their common spellings:
// "kebab", "kebab-case", "KebabCase", "camel", "camelCase", "lowerCamel".
func ParseStyle(raw string) (naming.Style, error) {
	key := strcase.ToKebab(strings.TrimSpace(raw))
	key = strings.TrimSuffix(key, "-case")
	switch key {
	case "kebab":
		return naming.StyleKebab, nil
	case "camel", "lower-camel":
		return naming.StyleCamel, nil
	}
	return "", fmt.Errorf("invalid style %q (use 'kebab' or 'camel')", raw)
}

// ParseColorMode validates a color mode name.
func ParseColorMode(raw string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(raw))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", raw)
}
