// Package config loads engine settings from a TOML file and the environment.
//
// A file looks like:
//
//	threshold = 2
//	color = false
//	help_flag = "usage"
//	help_switch = "u"
//
// ARGUE_THRESHOLD overrides threshold and a non-empty NO_COLOR turns color off.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/toejough/argue/internal/core"
	"github.com/toejough/argue/internal/flags"
	"github.com/toejough/argue/internal/help"
	"github.com/toejough/argue/internal/suggest"
)

// Exported constants.
const (
	EnvNoColor   = "NO_COLOR"
	EnvThreshold = "ARGUE_THRESHOLD"
)

// Exported variables.
var (
	ErrInvalid = errors.New("invalid config")
)

// Config is the resolved engine configuration.
type Config struct {
	Threshold suggest.Cost
	Color     bool
	HelpFlag  flags.Flag
}

// ApplyEnv returns cfg with environment overrides applied. lookup has the
// signature of os.LookupEnv.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) (Config, error) {
	if value, ok := lookup(EnvThreshold); ok {
		threshold, err := parseThreshold(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvThreshold, err)
		}

		c.Threshold = threshold
	}

	if value, ok := lookup(EnvNoColor); ok && value != "" {
		c.Color = false
	}

	return c, nil
}

// Options returns engine options whose styles render to w and whose help is
// raised by the configured help flag.
func (c Config) Options(w io.Writer) core.Options {
	styles := help.NewStyles(w, c.Color)

	return core.Options{Threshold: c.Threshold, Styles: &styles, HelpFlag: c.HelpFlag}
}

// Default returns suggestions off, color on and the standard help flag.
func Default() Config {
	return Config{Color: true, HelpFlag: flags.Help}
}

// Load reads the TOML file at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	var raw file

	md, err := toml.DecodeFile(path, &raw)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("%s: %w: %w", path, ErrInvalid, err)
	}

	cfg, err := raw.resolve(md)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads TOML text over the defaults.
func Parse(text string) (Config, error) {
	var raw file

	md, err := toml.Decode(text, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return raw.resolve(md)
}

type file struct {
	Threshold  *int    `toml:"threshold"`
	Color      *bool   `toml:"color"`
	HelpFlag   *string `toml:"help_flag"`
	HelpSwitch *string `toml:"help_switch"`
}

func (f file) resolve(md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		slices.Sort(keys)

		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	cfg := Default()

	if f.Threshold != nil {
		if *f.Threshold < 0 {
			return Config{}, fmt.Errorf("%w: threshold must not be negative, got %d", ErrInvalid, *f.Threshold)
		}

		cfg.Threshold = suggest.Cost(*f.Threshold)
	}

	if f.Color != nil {
		cfg.Color = *f.Color
	}

	if f.HelpFlag != nil {
		name := *f.HelpFlag
		if name == "" || strings.HasPrefix(name, "-") {
			return Config{}, fmt.Errorf("%w: help_flag must be a bare name, got %q", ErrInvalid, name)
		}

		cfg.HelpFlag.Long = name
	}

	if f.HelpSwitch != nil {
		short, ok := flags.ParseShort(*f.HelpSwitch)
		if !ok {
			return Config{}, fmt.Errorf("%w: help_switch must be one character, got %q", ErrInvalid, *f.HelpSwitch)
		}

		cfg.HelpFlag.Short = short
	}

	return cfg, nil
}

func parseThreshold(value string) (suggest.Cost, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: threshold must not be negative, got %d", ErrInvalid, n)
	}

	return suggest.Cost(n), nil
}
