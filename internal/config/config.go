package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Uber     UberConfig
	Geocoder GeocoderConfig
	Slack    SlackConfig
	NewRelic NewRelicConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
	Host string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	MaxConnections int
	MaxIdleConns   int
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	MaxRetries  int
	PoolSize    int
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// UberConfig configures the ride provider API and its OAuth exchange.
type UberConfig struct {
	BaseURL      string
	OAuthURL     string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Timeout      time.Duration
}

type GeocoderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SlackConfig struct {
	// VerificationToken is checked against the token field of every
	// slash-command payload.
	VerificationToken string
	Timeout           time.Duration
}

type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			Name:           getEnv("DB_NAME", "uberslack"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:   getEnvAsInt("DB_MAX_IDLE_CONNECTIONS", 5),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getEnv("REDIS_PORT", "6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			MaxRetries:  getEnvAsInt("REDIS_MAX_RETRIES", 3),
			PoolSize:    getEnvAsInt("REDIS_POOL_SIZE", 20),
			DialTimeout: 5 * time.Second,
			ReadTimeout: 3 * time.Second,
		},
		Uber: UberConfig{
			BaseURL:      getEnv("UBER_BASE_URL", "https://sandbox-api.uber.com"),
			OAuthURL:     getEnv("UBER_OAUTH_URL", "https://login.uber.com/oauth/v2/token"),
			ClientID:     getEnv("UBER_CLIENT_ID", ""),
			ClientSecret: getEnv("UBER_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("UBER_CALLBACK_URL", ""),
			Timeout:      parseDuration(getEnv("UBER_TIMEOUT", "10s"), 10*time.Second),
		},
		Geocoder: GeocoderConfig{
			BaseURL: getEnv("GEOCODER_BASE_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
			APIKey:  getEnv("GEOCODER_API_KEY", ""),
			Timeout: parseDuration(getEnv("GEOCODER_TIMEOUT", "5s"), 5*time.Second),
		},
		Slack: SlackConfig{
			VerificationToken: getEnv("SLACK_VERIFICATION_TOKEN", ""),
			Timeout:           parseDuration(getEnv("SLACK_TIMEOUT", "5s"), 5*time.Second),
		},
		NewRelic: NewRelicConfig{
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			AppName:    getEnv("NEW_RELIC_APP_NAME", "uber-slack"),
			Enabled:    getEnvAsBool("NEW_RELIC_ENABLED", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.Uber.BaseURL == "" {
		return fmt.Errorf("UBER_BASE_URL is required")
	}
	if c.Server.Env == "production" {
		if c.Uber.ClientID == "" || c.Uber.ClientSecret == "" {
			return fmt.Errorf("UBER_CLIENT_ID and UBER_CLIENT_SECRET must be set in production")
		}
		if c.Slack.VerificationToken == "" {
			return fmt.Errorf("SLACK_VERIFICATION_TOKEN must be set in production")
		}
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
