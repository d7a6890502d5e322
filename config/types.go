package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDb    TMDbConfig    `mapstructure:"tmdb"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDbConfig holds TMDb API connection details and request defaults
type TMDbConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Language     string        `mapstructure:"language"`
	Timeout      time.Duration `mapstructure:"timeout"`
	IncludeAdult bool          `mapstructure:"include_adult"`
	Proxy        string        `mapstructure:"proxy"`
	// Concurrency bounds parallel lookups in multi-id commands
	Concurrency int `mapstructure:"concurrency"`
}

// FilterConfig contains named filter expressions, e.g.
//
//	filter:
//	  classics: "year < 1980 and vote_average >= 7.5"
type FilterConfig map[string]string

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	ImageSize string `mapstructure:"image_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
