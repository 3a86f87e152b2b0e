package config

// This file binds CLI flags onto a pflag.FlagSet (owned by the cobra root
// command) and copies them into Config. Only flags the user actually set
// are applied, so config-file values survive unless overridden.

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/backmassage/kebab-rename/internal/naming"
)

// Flags holds raw flag values between parsing and [Flags.Apply].
type Flags struct {
	recursive bool
	yes       bool
	dryRun    bool
	verbose   bool
	ext       string
	style     naming.Style
	color     bool
	noColor   bool
	logFile   string
	config    string
	journal   string
	report    string
}

// BindFlags registers every kebab-rename flag on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{style: naming.StyleKebab}
	defineConversionFlags(fs, f)
	defineBehaviorFlags(fs, f)
	defineDisplayFlags(fs, f)
	defineOutputFlags(fs, f)
	return f
}

// defineConversionFlags registers -r/--recursive, -e/--ext, -s/--style.
func defineConversionFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "Process subdirectories recursively")
	fs.StringVarP(&f.ext, "ext", "e", "", "Only process these extensions, comma separated (e.g. .jpg,.png)")
	fs.VarP(&styleValue{&f.style}, "style", "s", "Naming style: kebab | camel")
}

// defineBehaviorFlags registers -y/--yes and -d/--dry-run.
func defineBehaviorFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVarP(&f.yes, "yes", "y", false, "Apply the renames without asking")
	fs.BoolVarP(&f.dryRun, "dry-run", "d", false, "Preview only (default); overrides --yes")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVar(&f.color, "color", false, "Force colored output")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
}

// defineOutputFlags registers --config, --journal, --report.
func defineOutputFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVar(&f.config, "config", "", "Load settings from a YAML file")
	fs.StringVar(&f.journal, "journal", "", "Record applied renames in a SQLite journal")
	fs.StringVar(&f.report, "report", "", "Write a Markdown (.md) or HTML (.html) report")
}

// ConfigPath returns the --config value.
func (f *Flags) ConfigPath() string { return f.config }

// Apply copies every flag that was set on the command line into cfg.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) error {
	changed := fs.Changed
	if changed("recursive") {
		cfg.Recursive = f.recursive
	}
	if changed("ext") {
		cfg.Extensions = ParseExtensions(f.ext)
	}
	if changed("style") {
		cfg.Style = f.style
	}
	if changed("yes") {
		cfg.Yes = f.yes
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("log") {
		cfg.LogFile = f.logFile
	}
	if changed("journal") {
		cfg.Journal = f.journal
	}
	if changed("report") {
		cfg.Report = f.report
	}
	if f.color && f.noColor {
		return fmt.Errorf("--color and --no-color are mutually exclusive")
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.color {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// styleValue adapts naming.Style to pflag.Value.
type styleValue struct{ p *naming.Style }

func (s *styleValue) String() string {
	if s.p == nil {
		return ""
	}
	return string(*s.p)
}

func (s *styleValue) Type() string { return "style" }

func (s *styleValue) Set(v string) error {
	style, err := ParseStyle(v)
	if err != nil {
		return err
	}
	*s.p = style
	return nil
}
