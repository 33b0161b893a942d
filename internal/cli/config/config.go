// Package config loads tabwright CLI configuration. Precedence from
// lowest to highest: built-in defaults, tabwright.yaml, TABWRIGHT_*
// environment variables, command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultOutput  = "text"
	DefaultDigits  = 1
	DefaultMissing = ""
)

// Config is the resolved CLI configuration.
type Config struct {
	// Output is the default render format (text, markdown, csv, html).
	Output string `koanf:"output"`
	// Digits is the number of decimal digits for statistics.
	Digits int `koanf:"digits"`
	// Missing is the marker rendered for absent values.
	Missing string `koanf:"missing"`
	// MaxWidth caps text output width; 0 falls back to the terminal.
	MaxWidth int `koanf:"max_width"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// currentConfig stores the last loaded config for access by commands.
var currentConfig *Config

// GetCurrentConfig returns the most recently loaded config, or the
// defaults when nothing was loaded yet.
func GetCurrentConfig() *Config {
	if currentConfig != nil {
		return currentConfig
	}
	return &Config{
		Output:  DefaultOutput,
		Digits:  DefaultDigits,
		Missing: DefaultMissing,
	}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > tabwright.yaml > tabwright.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"tabwright.yaml", "tabwright.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration. cfgFile may be empty; flags may be
// nil (e.g. in tests).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":    DefaultOutput,
		"digits":    DefaultDigits,
		"missing":   DefaultMissing,
		"max_width": 0,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// TABWRIGHT_MAX_WIDTH -> max_width
	if err := k.Load(env.Provider("TABWRIGHT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TABWRIGHT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	currentConfig = &cfg
	return &cfg, nil
}
