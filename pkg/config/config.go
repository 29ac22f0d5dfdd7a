// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage and generation settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains card persistence configuration
	Storage StorageConfig

	// Fetch contains page fetching configuration
	Fetch FetchConfig

	// GenAI contains generative backend configuration
	GenAI GenAIConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimitPerSecond caps requests per client IP; 0 disables limiting
	RateLimitPerSecond float64

	// RateLimitBurst is the burst allowance for the rate limiter
	RateLimitBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// StorageConfig holds card persistence configuration
type StorageConfig struct {
	// SQLitePath is the SQLite database file for cards
	SQLitePath string
}

// FetchConfig holds page fetching configuration
type FetchConfig struct {
	// Timeout bounds a single page fetch
	Timeout time.Duration
}

// GenAIConfig holds generative backend configuration
type GenAIConfig struct {
	// BaseURL overrides the OpenAI-compatible endpoint; empty uses the default
	BaseURL string

	// APIKey authenticates against the backend
	APIKey string

	// TextModel is the chat model used for summaries
	TextModel string

	// ImageModel is the model used for background images
	ImageModel string

	// TextTimeout bounds a single summary call
	TextTimeout time.Duration

	// ImageTimeout bounds a single image generation call
	ImageTimeout time.Duration

	// StrictSummary fails generation when the model reply is not valid JSON
	StrictSummary bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			RateLimitPerSecond: getEnvAsFloatOrDefault("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getEnvAsIntOrDefault("RATE_LIMIT_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "cards.db"),
		},
		Fetch: FetchConfig{
			Timeout: getEnvAsDurationOrDefault("FETCH_TIMEOUT", 30*time.Second),
		},
		GenAI: GenAIConfig{
			BaseURL:       getEnvOrDefault("GENAI_BASE_URL", ""),
			APIKey:        getEnvOrDefault("GENAI_API_KEY", ""),
			TextModel:     getEnvOrDefault("GENAI_TEXT_MODEL", "gpt-4o-mini"),
			ImageModel:    getEnvOrDefault("GENAI_IMAGE_MODEL", "dall-e-3"),
			TextTimeout:   getEnvAsDurationOrDefault("GENAI_TEXT_TIMEOUT", 60*time.Second),
			ImageTimeout:  getEnvAsDurationOrDefault("GENAI_IMAGE_TIMEOUT", 120*time.Second),
			StrictSummary: getEnvAsBoolOrDefault("GENAI_STRICT_SUMMARY", false),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a duration
// (e.g. "30s", "2m") or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Storage.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.GenAI.TextModel == "" {
		return errors.New("text model cannot be empty")
	}

	if c.GenAI.ImageModel == "" {
		return errors.New("image model cannot be empty")
	}

	return nil
}
