package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iho/txengine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("METRICS_FILE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}

	if cfg.MetricsFile != "" {
		t.Fatalf("expected metrics file default to be empty, got %q", cfg.MetricsFile)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.MaxUploadBytes != 32<<20 {
		t.Fatalf("expected 32MiB upload limit, got %d", cfg.MaxUploadBytes)
	}

	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 10 {
		t.Fatalf("expected rate limiting disabled by default, got rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	if cfg.RateLimitIdle != 10*time.Minute || cfg.RateLimitEvictInterval != time.Minute {
		t.Fatalf("unexpected limiter eviction defaults: idle=%s interval=%s", cfg.RateLimitIdle, cfg.RateLimitEvictInterval)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "45s")
	t.Setenv("METRICS_FILE", "/tmp/txengine.prom")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected logging overrides, got level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.HTTPReadTimeout != 45*time.Second {
		t.Fatalf("expected read timeout override, got %s", cfg.HTTPReadTimeout)
	}

	if cfg.MetricsFile != "/tmp/txengine.prom" {
		t.Fatalf("expected metrics file override, got %s", cfg.MetricsFile)
	}

	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit override, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadFileOverlaysYAML(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HTTP_PORT", "9090")

	path := filepath.Join(t.TempDir(), "txengine.yaml")
	content := "log_level: debug\nhttp_write_timeout: 5s\nmetrics_file: out.prom\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected file to override env log level, got %s", cfg.LogLevel)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected env value to survive when file omits key, got %s", cfg.HTTPPort)
	}
	if cfg.HTTPWriteTimeout != 5*time.Second {
		t.Fatalf("expected write timeout from file, got %s", cfg.HTTPWriteTimeout)
	}
	if cfg.MetricsFile != "out.prom" {
		t.Fatalf("expected metrics file from file, got %s", cfg.MetricsFile)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unterminated"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := config.LoadFile(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
