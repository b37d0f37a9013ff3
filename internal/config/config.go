package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port string

	// Groq (LLM provider)
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	// Catalog source
	CatalogBaseURL string

	// Rate limiting (disabled when RedisAddr is empty)
	RedisAddr  string
	RateLimit  int
	RateWindow time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", ""),

		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "https://dummyjson.com"),

		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RateLimit:  getIntEnv("RATE_LIMIT", 30),
		RateWindow: getDurationEnv("RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
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
