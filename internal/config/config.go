// Package config loads default settings for the csvcut command from a YAML
// file.
//
// Example:
//
//	delimiter: ";"
//	header: true
//	json: false
//	color: never
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the path of the defaults
// file.
const EnvVar = "CSVCUT_CONFIG"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults holds the settings read from a defaults file.  Unset values are
// left as the zero value (or nil for booleans).
type Defaults struct {
	Delimiter string `yaml:"delimiter"`
	Header    *bool  `yaml:"header"`
	JSON      *bool  `yaml:"json"`
	Color     string `yaml:"color"`
}

// Load reads defaults from the file named by the CSVCUT_CONFIG environment
// variable.  If the variable is not set, empty defaults are returned.
func Load() (Defaults, error) {
	path := strings.TrimSpace(os.Getenv(EnvVar))
	if path == "" {
		return Defaults{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads defaults from the given YAML file.
func LoadFile(path string) (Defaults, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("read %s file: %w", EnvVar, err)
	}
	d, err := Parse(b)
	if err != nil {
		return Defaults{}, fmt.Errorf("parse %s file %s: %w", EnvVar, path, err)
	}
	return d, nil
}

// Parse decodes defaults from YAML.  Unknown keys are an error.
func Parse(b []byte) (Defaults, error) {
	var d Defaults
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Defaults{}, err
	}
	if err := ValidateColor(d.Color); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// ValidateColor checks that mode is a known color mode.  The empty string
// is accepted and means the default.
func ValidateColor(mode string) error {
	switch mode {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected %s, %s or %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
}
