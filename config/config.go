package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Batch failure policies. FailFast aborts the whole batch on the first
// per-user error; Partial reports success-or-error per entry.
const (
	BatchPolicyFailFast = "fail_fast"
	BatchPolicyPartial  = "partial"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar sync specifics
	Google   GoogleConfig
	Batch    BatchConfig
	Database DatabaseConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleConfig is the OAuth client registration for the Google APIs.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// BatchConfig controls the calendar batch fan-out behavior.
type BatchConfig struct {
	// Policy is one of BatchPolicyFailFast / BatchPolicyPartial.
	Policy string
}

type DatabaseConfig struct {
	// Path of the SQLite user store. Empty disables persistence.
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google OAuth client registration
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if clientID := viper.GetString("client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}
	if redirectURL := viper.GetString("redirect_url"); redirectURL != "" {
		cfg.Google.RedirectURL = redirectURL
	}

	// Batch behavior
	cfg.Batch.Policy = viper.GetString("batch.policy")
	switch cfg.Batch.Policy {
	case BatchPolicyFailFast, BatchPolicyPartial:
	default:
		return nil, fmt.Errorf("invalid batch.policy %q: must be %q or %q",
			cfg.Batch.Policy, BatchPolicyFailFast, BatchPolicyPartial)
	}

	// Persistence (optional)
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		return nil, fmt.Errorf("google OAuth client is not configured - set google.client_id and google.client_secret")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google.redirect_url", "http://localhost:3000/google/redirect")
	viper.SetDefault("batch.policy", BatchPolicyFailFast)
	viper.SetDefault("database.path", "calendar-sync.db")
}
