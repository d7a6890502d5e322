package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		TMDb: TMDbConfig{
			APIKey:      "valid-api-key",
			BaseURL:     "https://api.themoviedb.org/3/",
			Timeout:     30 * time.Second,
			Concurrency: 4,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "Valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "Missing API key",
			mutate:  func(c *Config) { c.TMDb.APIKey = "" },
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "Placeholder API key",
			mutate:  func(c *Config) { c.TMDb.APIKey = "your-api-key-here" },
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "Relative base URL",
			mutate:  func(c *Config) { c.TMDb.BaseURL = "api.themoviedb.org/3" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "Bad proxy",
			mutate:  func(c *Config) { c.TMDb.Proxy = "not a proxy" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "Zero timeout",
			mutate:  func(c *Config) { c.TMDb.Timeout = 0 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "Zero concurrency",
			mutate:  func(c *Config) { c.TMDb.Concurrency = 0 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "Invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "Invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `tmdb:
  api_key: file-key
  language: de-DE
  timeout: 5s
filter:
  classics: "year < 1980 and vote_average >= 7.5"
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TMDb.APIKey != "file-key" {
		t.Errorf("api key = %q, want file-key", cfg.TMDb.APIKey)
	}
	if cfg.TMDb.Language != "de-DE" {
		t.Errorf("language = %q, want de-DE", cfg.TMDb.Language)
	}
	if cfg.TMDb.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.TMDb.Timeout)
	}
	if cfg.TMDb.BaseURL != "https://api.themoviedb.org/3/" {
		t.Errorf("base url default not applied: %q", cfg.TMDb.BaseURL)
	}
	if cfg.Filter["classics"] == "" {
		t.Errorf("filter preset not loaded: %v", cfg.Filter)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MOVIEDB_TMDB_API_KEY", "env-key")
	t.Setenv("MOVIEDB_OUTPUT_FORMAT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without config file error = %v", err)
	}
	if cfg.TMDb.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", cfg.TMDb.APIKey)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output format = %q, want json", cfg.Output.Format)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with missing explicit file should fail")
	}
}
