package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Google Maps configuration
	Maps MapsConfig

	// Profile store configuration
	Store StoreConfig

	// Role session configuration
	Session SessionConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// MapsConfig holds the key for the map and places widget
type MapsConfig struct {
	APIKey string
}

// StoreConfig holds the simulated backend parameters
type StoreConfig struct {
	ListDelay time.Duration
	OpDelay   time.Duration
	IDScheme  string
}

// SessionConfig holds role token configuration
type SessionConfig struct {
	Secret     string
	CookieName string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // json | console
}

const defaultSessionSecret = "profile-explorer-dev-secret"

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg(".env file not found")
		}
	}

	config := FromEnv()

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FromEnv reads the configuration from the process environment only
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Maps: MapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		Store: StoreConfig{
			ListDelay: getDurationEnv("STORE_LIST_DELAY", 800*time.Millisecond),
			OpDelay:   getDurationEnv("STORE_OP_DELAY", 500*time.Millisecond),
			IDScheme:  getEnv("STORE_ID_SCHEME", "max"),
		},
		Session: SessionConfig{
			Secret:     getEnv("ROLE_TOKEN_SECRET", defaultSessionSecret),
			CookieName: getEnv("ROLE_COOKIE_NAME", "role"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Store.ListDelay < 0 || c.Store.OpDelay < 0 {
		return fmt.Errorf("store delays must not be negative")
	}
	switch c.Store.IDScheme {
	case "max", "length":
	default:
		return fmt.Errorf("STORE_ID_SCHEME must be max or length, got %q", c.Store.IDScheme)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("ROLE_TOKEN_SECRET is required")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("ROLE_COOKIE_NAME is required")
	}

	// The map widget degrades to a plain list without a key
	if !c.IsMapsConfigured() {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not configured. Map and location autocomplete will be unavailable.")
	}
	if c.Session.Secret == defaultSessionSecret {
		log.Warn().Msg("ROLE_TOKEN_SECRET not set, using the development secret")
	}

	return nil
}

// IsMapsConfigured checks if the map widget key is present
func (c *Config) IsMapsConfigured() bool {
	return c.Maps.APIKey != ""
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
