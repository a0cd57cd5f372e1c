package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"taskmagic/config"
)

// writeConfigFile drops a config.yaml into a temp dir and points
// CONFIG_PATH at it so Load picks it up ahead of the working directory.
func writeConfigFile(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", dir)
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply around required keys", func(t *testing.T) {
		viper.Reset()
		writeConfigFile(t, `
vikunja:
  url: http://localhost:3456
  token: tk-local
`)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.HTTPServer.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
		}
		if cfg.HTTPServer.Mode != "debug" {
			t.Errorf("expected default mode debug, got %q", cfg.HTTPServer.Mode)
		}
		if cfg.Vikunja.TimeoutSeconds != 15 {
			t.Errorf("expected default timeout 15s, got %d", cfg.Vikunja.TimeoutSeconds)
		}
		if cfg.Webhook.RateLimitPerMin != 60 {
			t.Errorf("expected default rate limit 60, got %d", cfg.Webhook.RateLimitPerMin)
		}
		if cfg.Enrich.CacheTTLMinutes != 10 {
			t.Errorf("expected default cache TTL 10, got %d", cfg.Enrich.CacheTTLMinutes)
		}
		if cfg.GCalendar.Enabled {
			t.Error("expected calendar mirroring to default off")
		}
		if cfg.GCalendar.CalendarID != "primary" {
			t.Errorf("expected default calendar ID primary, got %q", cfg.GCalendar.CalendarID)
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		viper.Reset()
		writeConfigFile(t, `
http_server:
  port: 9090
  mode: release
logger:
  level: warn
  mode: production
vikunja:
  url: https://vikunja.example.com
  token: tk-prod
  timeout_seconds: 30
webhook:
  secret: whsec-abc
  rate_limit_per_min: 120
enrich:
  cache_ttl_minutes: 5
gcalendar:
  enabled: true
  calendar_id: team@example.com
  event_duration_minutes: 45
`)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.HTTPServer.Port != 9090 {
			t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
		}
		if cfg.Vikunja.URL != "https://vikunja.example.com" {
			t.Errorf("unexpected vikunja URL %q", cfg.Vikunja.URL)
		}
		if cfg.Vikunja.TimeoutSeconds != 30 {
			t.Errorf("expected timeout 30s, got %d", cfg.Vikunja.TimeoutSeconds)
		}
		if cfg.Webhook.Secret != "whsec-abc" {
			t.Errorf("unexpected webhook secret %q", cfg.Webhook.Secret)
		}
		if cfg.Webhook.RateLimitPerMin != 120 {
			t.Errorf("expected rate limit 120, got %d", cfg.Webhook.RateLimitPerMin)
		}
		if !cfg.GCalendar.Enabled {
			t.Error("expected calendar mirroring enabled")
		}
		if cfg.GCalendar.CalendarID != "team@example.com" {
			t.Errorf("unexpected calendar ID %q", cfg.GCalendar.CalendarID)
		}
		if cfg.GCalendar.EventDurationMinutes != 45 {
			t.Errorf("expected event duration 45, got %d", cfg.GCalendar.EventDurationMinutes)
		}
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		viper.Reset()
		writeConfigFile(t, `
vikunja:
  url: http://localhost:3456
  token: tk-from-file
`)
		t.Setenv("VIKUNJA_TOKEN", "tk-from-env")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Vikunja.Token != "tk-from-env" {
			t.Errorf("expected env token to win, got %q", cfg.Vikunja.Token)
		}
	})

	t.Run("missing vikunja credentials is an error", func(t *testing.T) {
		viper.Reset()
		writeConfigFile(t, `
http_server:
  port: 9090
`)

		if _, err := config.Load(); err == nil {
			t.Fatal("expected an error when vikunja.url and vikunja.token are unset")
		}
	})
}
