package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MOVIEDB_TMDB_API_KEY
const EnvPrefix = "MOVIEDB"

var (
	// ErrMissingAPIKey indicates tmdb.api_key was not set
	ErrMissingAPIKey = errors.New("tmdb.api_key must be set to a valid API key")
	// ErrInvalidValue indicates a setting outside its allowed values
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Load loads the configuration from file and environment. When configPath
// is empty a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".moviedb"))
		}

		// Check /etc
		v.AddConfigPath("/etc/moviedb/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDb defaults; api_key is registered so env overrides are unmarshaled
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3/")
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.timeout", 30*time.Second)
	v.SetDefault("tmdb.include_adult", false)
	v.SetDefault("tmdb.proxy", "")
	v.SetDefault("tmdb.concurrency", 4)

	// Output defaults
	v.SetDefault("output.format", "table")
	v.SetDefault("output.image_size", "w500")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDb.APIKey == "" || cfg.TMDb.APIKey == "your-api-key-here" {
		return ErrMissingAPIKey
	}

	if u, err := url.Parse(cfg.TMDb.BaseURL); err != nil || !u.IsAbs() {
		return fmt.Errorf("%w: tmdb.base_url %q is not an absolute URL", ErrInvalidValue, cfg.TMDb.BaseURL)
	}

	if cfg.TMDb.Proxy != "" {
		if u, err := url.Parse(cfg.TMDb.Proxy); err != nil || u.Host == "" {
			return fmt.Errorf("%w: tmdb.proxy %q", ErrInvalidValue, cfg.TMDb.Proxy)
		}
	}

	if cfg.TMDb.Timeout <= 0 {
		return fmt.Errorf("%w: tmdb.timeout must be positive", ErrInvalidValue)
	}

	if cfg.TMDb.Concurrency < 1 {
		return fmt.Errorf("%w: tmdb.concurrency must be at least 1", ErrInvalidValue)
	}

	// Validate output format
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("%w: output.format %s (must be 'table' or 'json')", ErrInvalidValue, cfg.Output.Format)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("%w: logging level %s", ErrInvalidValue, cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("%w: logging format %s", ErrInvalidValue, cfg.Logging.Format)
	}

	return nil
}

// ProxyURL returns the parsed proxy, or nil when none is configured
func (c TMDbConfig) ProxyURL() *url.URL {
	if c.Proxy == "" {
		return nil
	}
	u, err := url.Parse(c.Proxy)
	if err != nil {
		return nil
	}
	return u
}
