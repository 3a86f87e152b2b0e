package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape. Pointer fields distinguish "unset"
// from false so the file only overrides what it mentions.
type fileConfig struct {
	Style      string   `yaml:"style"`
	Recursive  *bool    `yaml:"recursive"`
	Extensions []string `yaml:"extensions"`
	Color      string   `yaml:"color"`
	Verbose    *bool    `yaml:"verbose"`
	LogFile    string   `yaml:"log_file"`
	Journal    string   `yaml:"journal"`
	Report     string   `yaml:"report"`
}

// LoadFile reads a YAML config file and applies the keys it sets on top of
// cfg. Unknown keys are rejected so typos do not pass silently. An empty
// file is valid and changes nothing.
//
//	style: camel
//	recursive: true
//	extensions: [".jpg", "png"]
//	color: never
//	log_file: /tmp/kebab-rename.log
//	journal: /var/lib/kebab-rename/journal.db
//	report: kebab-rename-report.html
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Style != "" {
		s, err := ParseStyle(fc.Style)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Style = s
	}
	if fc.Recursive != nil {
		cfg.Recursive = *fc.Recursive
	}
	if fc.Extensions != nil {
		cfg.Extensions = NormalizeExtensions(fc.Extensions)
	}
	if fc.Color != "" {
		m, err := ParseColorMode(fc.Color)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.ColorMode = m
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.Journal != "" {
		cfg.Journal = fc.Journal
	}
	if fc.Report != "" {
		cfg.Report = fc.Report
	}
	cfg.ConfigFile = path
	return nil
}
