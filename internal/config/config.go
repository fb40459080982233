package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://rickandmortyapi.com/api"

// Config represents the application configuration
type Config struct {
	Version int         `toml:"version"`
	API     APISettings `toml:"api"`
	UI      UISettings  `toml:"ui"`
	Log     LogSettings `toml:"log"`
}

// APISettings configures the REST client
type APISettings struct {
	BaseURL   string `toml:"base_url" env:"RICKDEX_API_BASE_URL"`
	TimeoutMS int    `toml:"timeout_ms" env:"RICKDEX_API_TIMEOUT_MS"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ResultDelayMS   int `toml:"result_delay_ms" env:"RICKDEX_RESULT_DELAY_MS"`
	ErrorDelayMS    int `toml:"error_delay_ms" env:"RICKDEX_ERROR_DELAY_MS"`
	SuggestionLimit int `toml:"suggestion_limit" env:"RICKDEX_SUGGESTION_LIMIT"`
	PageWindow      int `toml:"page_window" env:"RICKDEX_PAGE_WINDOW"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file" env:"RICKDEX_LOG_FILE"`
	Level string `toml:"level" env:"RICKDEX_LOG_LEVEL"`
}

// Timeout returns the HTTP timeout as a duration
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// ResultDelay is the pacing applied before a page result is shown
func (u UISettings) ResultDelay() time.Duration {
	return time.Duration(u.ResultDelayMS) * time.Millisecond
}

// ErrorDelay is the pacing applied before a failure is shown
func (u UISettings) ErrorDelay() time.Duration {
	return time.Duration(u.ErrorDelayMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			TimeoutMS: 15000,
		},
		UI: UISettings{
			ResultDelayMS:   400,
			ErrorDelayMS:    200,
			SuggestionLimit: 3,
			PageWindow:      4,
		},
		Log: LogSettings{
			File:  "rickdex.log",
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "rickdex", "config.toml")
}

// Load reads the TOML file at path on top of the defaults, then applies
// .env and environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path as TOML
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the values a running client depends on
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.TimeoutMS <= 0 {
		return fmt.Errorf("api.timeout_ms must be positive, got %d", c.API.TimeoutMS)
	}
	if c.UI.ResultDelayMS < 0 || c.UI.ErrorDelayMS < 0 {
		return errors.New("ui delays must not be negative")
	}
	if c.UI.SuggestionLimit <= 0 {
		return fmt.Errorf("ui.suggestion_limit must be positive, got %d", c.UI.SuggestionLimit)
	}
	if c.UI.PageWindow <= 0 {
		return fmt.Errorf("ui.page_window must be positive, got %d", c.UI.PageWindow)
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
