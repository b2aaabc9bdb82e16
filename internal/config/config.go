package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It is refused in production.
const DefaultJWTSecret = "insecure-dev-secret-change-me"

// Config holds all configuration for the application
type Config struct {
	ServerPort string
	GinMode    string
	AppEnv     string

	MongoURI          string
	MongoDatabase     string
	MongoTransactions bool

	JWTSecret string
	JWTExpiry time.Duration

	CORSAllowedOrigin string

	// Photo uploads (S3-compatible). Uploads are disabled when S3Bucket is empty.
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3Region        string
	S3UseSSL        bool
	S3PublicBaseURL string

	// AI content generation. The offline generator is used when GeminiAPIKey is empty.
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		AppEnv:     getEnv("APP_ENV", "development"),

		MongoURI:          getEnvRequired("MONGO_URI"),
		MongoDatabase:     getEnvRequired("MONGO_DATABASE"),
		MongoTransactions: getEnv("MONGO_TRANSACTIONS", "false") == "true",

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h")),

		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),

		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3UseSSL:        getEnv("S3_USE_SSL", "false") == "true",
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	if err := cfg.checkSecrets(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.JWTSecret == DefaultJWTSecret {
		log.Printf("WARNING: JWT_SECRET is not set, using an insecure development secret")
	}

	return cfg
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// UploadsEnabled reports whether photo upload URLs can be issued.
func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) checkSecrets() error {
	if c.IsProduction() && c.JWTSecret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set when APP_ENV=production")
	}
	return nil
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}
