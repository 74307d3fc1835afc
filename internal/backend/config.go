package backend

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds everything needed to reach the assessment service.
type Config struct {
	// BaseURL is the root of the service API.
	BaseURL string `env:"STUDYMATE_API_URL" envDefault:"http://localhost:8000"`

	// SessionHeader carries the session id on every request.
	SessionHeader string `env:"STUDYMATE_SESSION_HEADER" envDefault:"X-Session-Id"`

	// Timeout bounds a single HTTP request, excluding retries.
	Timeout time.Duration `env:"STUDYMATE_API_TIMEOUT" envDefault:"30s"`

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient request failures.
type RetryConfig struct {
	MaxAttempts int           `env:"STUDYMATE_RETRY_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"STUDYMATE_RETRY_INITIAL_WAIT" envDefault:"500ms"`
	MaxWait     time.Duration `env:"STUDYMATE_RETRY_MAX_WAIT" envDefault:"5s"`
	Multiplier  float64       `env:"STUDYMATE_RETRY_MULTIPLIER" envDefault:"2.0"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:       "http://localhost:8000",
		SessionHeader: "X-Session-Id",
		Timeout:       30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// LoadConfig reads configuration from the environment, loading a local
// .env file first when one exists.
func LoadConfig() (Config, error) {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the client cannot work with.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid STUDYMATE_API_URL %q", c.BaseURL)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("STUDYMATE_RETRY_ATTEMPTS must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
