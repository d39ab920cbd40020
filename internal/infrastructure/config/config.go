package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"    yaml:"log_level"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console" yaml:"log_format"`

	// Metrics textfile written after a CLI run (empty disables it)
	MetricsFile string `env:"METRICS_FILE" yaml:"metrics_file"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080" yaml:"http_port"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"  yaml:"http_read_timeout"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"  yaml:"http_write_timeout"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"  yaml:"http_idle_timeout"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"  yaml:"http_shutdown_timeout"`

	// Largest accepted upload on POST /api/v1/transactions
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"33554432" yaml:"max_upload_bytes"`

	// Per-IP upload rate limit (0 disables it)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"0"  yaml:"rate_limit_rps"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10" yaml:"rate_limit_burst"`

	// Per-IP limiter state is dropped after RateLimitIdle without requests,
	// checked every RateLimitEvictInterval.
	RateLimitIdle          time.Duration `env:"RATE_LIMIT_IDLE"           envDefault:"10m" yaml:"rate_limit_idle"`
	RateLimitEvictInterval time.Duration `env:"RATE_LIMIT_EVICT_INTERVAL" envDefault:"1m"  yaml:"rate_limit_evict_interval"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads configuration from environment variables and then applies the
// keys present in the YAML file at path. An empty path behaves like Load.
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}
