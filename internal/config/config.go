// Package config provides configuration loading and management for the application.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Environment key selecting the network and contract set
	ActiveNetwork string

	// HTTP server port
	Port string

	// Logging
	LogLevel  string
	LogFormat string

	// Wallet adapter project id and public dApp URL
	ProjectID string
	AppURL    string

	// Optional YAML file with wallet-kit settings
	WalletKitConfig string

	// OpenTelemetry endpoint for observability
	OtelEndpoint string

	EnableMetrics bool

	// Rate limiting for the publication API
	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// When false only the zero-address sentinel is checked on descriptors
	StrictValidation bool
}

// Load creates a new Config from environment variables
func Load() Config {
	projectID := GetEnvOrDefault("REOWN_PROJECT_ID", "")
	if projectID == "" {
		projectID = GetEnvOrDefault("REACT_APP_REOWN_PROJECT_ID", "")
	}

	return Config{
		ActiveNetwork:      strings.TrimSpace(GetEnvOrDefault("ACTIVE_NETWORK", "")),
		Port:               GetEnvOrDefault("PORT", "8080"),
		LogLevel:           strings.ToLower(GetEnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(GetEnvOrDefault("LOG_FORMAT", "text")),
		ProjectID:          projectID,
		AppURL:             GetEnvOrDefault("APP_URL", ""),
		WalletKitConfig:    GetEnvOrDefault("WALLETKIT_CONFIG", ""),
		OtelEndpoint:       GetEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		EnableMetrics:      GetEnvAsBool("ENABLE_METRICS", true),
		RateLimitRPS:       GetEnvAsFloat("RATE_LIMIT_RPS", 10.0),
		RateLimitBurst:     GetEnvAsInt("RATE_LIMIT_BURST", 20),
		CORSAllowedOrigins: GetEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ReadTimeout:        GetEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:       GetEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		StrictValidation:   GetEnvAsBool("STRICT_VALIDATION", true),
	}
}

// LoadDotEnv loads variables from the given .env files without overriding ones
// already set. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// GetEnv retrieves an environment variable and whether it exists
func GetEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	return value, exists
}

// GetEnvOrDefault retrieves an environment variable or returns the default value if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := GetEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer with a default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := GetEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float with a default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := GetEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean with a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := GetEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as a duration with a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := GetEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsList splits a comma separated variable, dropping empty items
func GetEnvAsList(key string, defaultValue []string) []string {
	value, exists := GetEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
