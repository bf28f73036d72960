// Package config handles TOML-based configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"ytthumb/internal/extract"
	"ytthumb/internal/media"
)

// Config holds all application configuration.
type Config struct {
	Quality    string   `toml:"quality"`
	Time       int      `toml:"time"`
	Extractor  string   `toml:"extractor"`
	SaveDir    string   `toml:"save_dir"`
	History    bool     `toml:"history"`
	FetchTitle bool     `toml:"fetch_title"`
	OpenApp    string   `toml:"open_app"`
	Timeout    Duration `toml:"timeout"`
	Debug      bool     `toml:"debug"`
}

// Duration is a time.Duration read from a TOML string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Quality:   media.MaxRes.String(),
		Time:      0,
		Extractor: extract.ModeStrict,
		SaveDir:   "~/Pictures/ytthumb",
		History:   true,
		Timeout:   Duration{30 * time.Second},
		Debug:     false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ytthumb"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ytthumb"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if _, err := media.ParseQuality(c.Quality); err != nil {
		return err
	}

	if c.Time < 0 {
		return fmt.Errorf("time offset cannot be negative, got %d", c.Time)
	}

	switch strings.ToLower(c.Extractor) {
	case extract.ModeStrict, extract.ModeGeneric:
	default:
		return fmt.Errorf("unsupported extractor %q (valid: strict, generic)", c.Extractor)
	}

	if c.SaveDir == "" {
		return fmt.Errorf("save_dir cannot be empty")
	}

	if c.Timeout.Duration < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	return nil
}

// QualityTier returns the configured tier. Call after Validate.
func (c *Config) QualityTier() media.Quality {
	q, _ := media.ParseQuality(c.Quality)
	return q
}

// ExpandSaveDir resolves ~ in the save directory path.
func (c *Config) ExpandSaveDir() (string, error) {
	dir := c.SaveDir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding home dir: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Abs(dir)
}

// HistoryPath returns the path to the saved-file log.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "ytthumb", "saved.tsv"), nil
}
