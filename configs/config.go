package configs

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
	App      AppConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds JWT configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig holds site-level configuration
type AppConfig struct {
	// Timezone anchors "today" and "this week" for the journal and habit
	// statistics. Defaults to the business timezone.
	Timezone string
	// AnimationAssetURL is the base URL for the animation assets referenced
	// by the public pages. Passed through to clients, never fetched here.
	AnimationAssetURL string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			TokenTTL:  time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("GO_ENV", "development") == "development",
		},
		App: AppConfig{
			Timezone:          getEnv("APP_TIMEZONE", "Africa/Addis_Ababa"),
			AnimationAssetURL: getEnv("ANIMATION_ASSET_URL", ""),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
