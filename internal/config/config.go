package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppDirName = "ksuid"

	// Env var for overriding the config file location.
	ConfigEnvVar = "KSUID_CONFIG"
)

// DateLocale selects how ambiguous numeric dates are read.
type DateLocale string

const (
	DateLocaleISO DateLocale = "iso"
	DateLocaleUS  DateLocale = "us"
	DateLocaleEU  DateLocale = "eu"
)

// Output formats understood by the new command.
const (
	FormatString    = "string"
	FormatHex       = "hex"
	FormatInspect   = "inspect"
	FormatTime      = "time"
	FormatTimestamp = "timestamp"
	FormatPayload   = "payload"
)

// Formats lists every valid value of Config.Format.
var Formats = []string{FormatString, FormatHex, FormatInspect, FormatTime, FormatTimestamp, FormatPayload}

// Aliases is a map of alias name to target command.
type Aliases map[string]string

// Config is the content of config.toml.
type Config struct {
	Format     string     `toml:"format"`
	DateLocale DateLocale `toml:"date_locale"`
	Timezone   string     `toml:"timezone"`
	Alias      Aliases    `toml:"alias"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Format:     FormatString,
		DateLocale: DateLocaleISO,
		Timezone:   "UTC",
		Alias:      make(Aliases),
	}
}

// ConfigPath returns the config file path:
//
//	$KSUID_CONFIG
//
// or
//
//	$XDG_CONFIG_HOME/ksuid/config.toml
//
// or
//
//	~/.config/ksuid/config.toml
func ConfigPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv(ConfigEnvVar)); env != "" {
		return ExpandUser(env)
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, AppDirName, "config.toml"), nil
}

// Load reads config.toml and fills unset keys with defaults.
// A missing file is not an error; malformed TOML or invalid values are.
func Load() (Config, error) {
	cfgPath, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(cfgPath)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if file.Format != "" {
		cfg.Format = strings.ToLower(strings.TrimSpace(file.Format))
	}
	if file.DateLocale != "" {
		cfg.DateLocale = DateLocale(strings.ToLower(strings.TrimSpace(string(file.DateLocale))))
	}
	if file.Timezone != "" {
		cfg.Timezone = strings.TrimSpace(file.Timezone)
	}
	// Copy to avoid sharing the decoded map
	for k, v := range file.Alias {
		cfg.Alias[k] = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every key holds a supported value.
func (c Config) Validate() error {
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q (expected one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	switch c.DateLocale {
	case DateLocaleISO, DateLocaleUS, DateLocaleEU:
	default:
		return fmt.Errorf("invalid date_locale %q (expected iso, us or eu)", c.DateLocale)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// IsValidFormat reports whether f names a known output format.
func IsValidFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// ExpandUser expands a leading "~/" to the user home directory.
// If the path doesn't start with "~", it returns it unchanged.
func ExpandUser(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if p == "~" {
			return home, nil
		}
		return filepath.Join(home, p[2:]), nil
	}
	return p, nil
}
