package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables that override the config files.
const (
	EnvAPIKey    = "LASTFM_API_KEY"
	EnvAPISecret = "LASTFM_API_SECRET"
)

type Config struct {
	// Last.fm API access (api_key is required)
	Lastfm LastfmConfig `koanf:"lastfm"`

	// Chart page settings
	Charts ChartsConfig `koanf:"charts"`

	// Log file settings
	Log LogConfig `koanf:"log"`
}

// LastfmConfig holds Last.fm API configuration.
type LastfmConfig struct {
	APIKey         string `koanf:"api_key"`
	APISecret      string `koanf:"api_secret"`      // only needed for the artist discovery popup
	BaseURL        string `koanf:"base_url"`        // API root (default: https://ws.audioscrobbler.com/2.0/)
	TimeoutSeconds int    `koanf:"timeout_seconds"` // HTTP timeout (default: 15)
}

// ChartsConfig holds chart page configuration.
type ChartsConfig struct {
	ArtistsLimit    int `koanf:"artists_limit"`      // Top artists shown (default: 12)
	TracksLimit     int `koanf:"tracks_limit"`       // Top tracks shown (default: 18)
	TagConcurrency  int `koanf:"tag_concurrency"`    // Parallel tag lookups (default: 4)
	TagCacheTTLDays int `koanf:"tag_cache_ttl_days"` // Cache TTL in days (default: 7)
}

// LogConfig holds log file configuration.
type LogConfig struct {
	Level      string `koanf:"level"`        // debug, info, warn, error (default: info)
	File       string `koanf:"file"`         // default: $XDG_STATE_HOME/lfmbrowse/lfmbrowse.log
	MaxSizeMB  int    `koanf:"max_size_mb"`  // default: 10
	MaxBackups int    `koanf:"max_backups"`  // default: 3
	MaxAgeDays int    `koanf:"max_age_days"` // default: 28
}

// Load reads the config files, then applies .env and environment overrides.
func Load() (*Config, error) {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given TOML files in order (last wins). Missing files
// are skipped.
func LoadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Lastfm.APIKey = v
	}
	if v := os.Getenv(EnvAPISecret); v != "" {
		cfg.Lastfm.APISecret = v
	}

	cfg.Lastfm.APIKey = strings.TrimSpace(cfg.Lastfm.APIKey)

	// Expand ~ in log file
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/lfmbrowse/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lfmbrowse", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasLastfmConfig returns true if a Last.fm API key is configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != ""
}

// HasDiscoveryConfig returns true if the discovery popup can authenticate.
func (c *Config) HasDiscoveryConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.APISecret != ""
}

// GetLastfmConfig returns the Last.fm configuration with defaults applied.
func (c *Config) GetLastfmConfig() LastfmConfig {
	cfg := c.Lastfm
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://ws.audioscrobbler.com/2.0/"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 15
	}
	return cfg
}

// Timeout returns the HTTP timeout.
func (c LastfmConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetChartsConfig returns the chart configuration with defaults applied.
func (c *Config) GetChartsConfig() ChartsConfig {
	cfg := c.Charts

	if cfg.ArtistsLimit <= 0 {
		cfg.ArtistsLimit = 12
	}
	if cfg.TracksLimit <= 0 {
		cfg.TracksLimit = 18
	}
	if cfg.TagConcurrency <= 0 || cfg.TagConcurrency > 16 {
		cfg.TagConcurrency = 4
	}
	if cfg.TagCacheTTLDays <= 0 {
		cfg.TagCacheTTLDays = 7
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
// An empty File means the caller picks the default location.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 28
	}

	return cfg
}
