package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort   string
	DatabaseType string // "sqlite" (default), "postgres", "mysql"
	DatabasePath string
	DatabaseURL  string

	// Email notifications (safety alerts, weekly summaries) via AWS SES
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	ParentEmail  string
	EmailDebug   bool

	// Text-to-speech preview cache
	AudioCachePath string
	TTSTimeout     time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	// Missing .env is fine; environment variables still apply
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./moxiedash.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:   getEnv("SES_FROM_EMAIL", ""),
		SESFromName:    getEnv("SES_FROM_NAME", "Moxie Dashboard"),
		ParentEmail:    getEnv("PARENT_EMAIL", ""),
		EmailDebug:     getEnv("EMAIL_DEBUG", "") == "true",
		AudioCachePath: getEnv("AUDIO_CACHE_PATH", "./audio-cache"),
		TTSTimeout:     10 * time.Second,
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
