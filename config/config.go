package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Quick-add enrichment specifics
	Vikunja   VikunjaConfig
	Webhook   WebhookConfig
	Enrich    EnrichConfig
	GCalendar GCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type VikunjaConfig struct {
	URL            string
	Token          string
	TimeoutSeconds int
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	RateLimitPerMin int
}

type EnrichConfig struct {
	CacheTTLMinutes int
}

type GCalendarConfig struct {
	Enabled              bool
	CredentialsFile      string
	CalendarID           string
	EventDurationMinutes int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., $CONFIG_PATH
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		viper.AddConfigPath(configPath)
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Vikunja API
	cfg.Vikunja.URL = viper.GetString("vikunja.url")
	cfg.Vikunja.Token = viper.GetString("vikunja.token")
	cfg.Vikunja.TimeoutSeconds = viper.GetInt("vikunja.timeout_seconds")
	if vikunjaURL := viper.GetString("vikunja_url"); vikunjaURL != "" {
		cfg.Vikunja.URL = vikunjaURL
	}
	if vikunjaToken := viper.GetString("vikunja_token"); vikunjaToken != "" {
		cfg.Vikunja.Token = vikunjaToken
	}

	if cfg.Vikunja.URL == "" || cfg.Vikunja.Token == "" {
		return nil, fmt.Errorf("vikunja is not configured - please set vikunja.url and vikunja.token in config.yaml or environment")
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Enrichment
	cfg.Enrich.CacheTTLMinutes = viper.GetInt("enrich.cache_ttl_minutes")

	// Google Calendar mirroring
	cfg.GCalendar.Enabled = viper.GetBool("gcalendar.enabled")
	cfg.GCalendar.CredentialsFile = viper.GetString("gcalendar.credentials_file")
	cfg.GCalendar.CalendarID = viper.GetString("gcalendar.calendar_id")
	cfg.GCalendar.EventDurationMinutes = viper.GetInt("gcalendar.event_duration_minutes")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("vikunja.timeout_seconds", 15)
	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("enrich.cache_ttl_minutes", 10)
	viper.SetDefault("gcalendar.enabled", false)
	viper.SetDefault("gcalendar.credentials_file", "google-credentials.json")
	viper.SetDefault("gcalendar.calendar_id", "primary")
	viper.SetDefault("gcalendar.event_duration_minutes", 60)
}
