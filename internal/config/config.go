// Package config loads the service configuration from the environment and an
// optional YAML file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"tiptime/internal/currency"
)

// Config represents the application configuration.
type Config struct {
	// Environment selects logger settings (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"1m" yaml:"idleTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins is a comma separated list of origins allowed to call the API
		CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" yaml:"corsAllowedOrigins"`
	} `yaml:"http"`

	Tip struct {
		// DefaultLocale formats results when a request names no locale
		DefaultLocale string `env:"TIP_DEFAULT_LOCALE" env-default:"en-US" yaml:"defaultLocale"`
		// DefaultCurrency overrides the currency inferred from the locale
		DefaultCurrency string `env:"TIP_DEFAULT_CURRENCY" yaml:"defaultCurrency"`
	} `yaml:"tip"`

	OTel struct {
		// Enabled turns on OTLP export of traces, metrics and logs
		Enabled bool `env:"OTEL_ENABLED" env-default:"false" yaml:"enabled"`
		// ServiceName is reported as service.name on every signal
		ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"tiptime" yaml:"serviceName"`
	} `yaml:"otel"`

	// GracefulShutdownTimeout bounds how long in-flight requests may run after a stop signal
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads .env (when present), then the YAML file at path (when path is
// non-empty and exists), then the process environment.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if path != "" && fileExists(path) {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrap(err, "read config")
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the default locale and currency can be formatted.
func (c *Config) Validate() error {
	if _, err := currency.NewForLocale(c.Tip.DefaultLocale, c.Tip.DefaultCurrency); err != nil {
		return errors.Wrap(err, "invalid tip defaults")
	}
	if !strings.HasPrefix(c.HTTP.MetricsPath, "/") {
		return errors.Errorf("metrics path %q must start with /", c.HTTP.MetricsPath)
	}
	return nil
}

// AllowedOrigins splits CORSAllowedOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.HTTP.CORSAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errors.Wrap(err, "load .env")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
