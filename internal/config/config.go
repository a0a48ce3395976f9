package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	Port         string
	DatabaseURL  string
	RedisURL     string
	StreamBuffer int
}

// Load reads configuration from environment variables. REDIS_URL is
// optional; without it the live feed is served by the in-process hub
// only.
func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	dbURL := getEnv("DATABASE_URL", "")
	redisURL := getEnv("REDIS_URL", "")
	streamBuffer := getEnvInt("STREAM_BUFFER", 64)

	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if streamBuffer <= 0 {
		return nil, fmt.Errorf("STREAM_BUFFER must be positive")
	}

	return &Config{
		Port:         port,
		DatabaseURL:  dbURL,
		RedisURL:     redisURL,
		StreamBuffer: streamBuffer,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
