package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AppConfig is the environment-driven deployment configuration. Every
// external collaborator (database, redis, LLM provider, token secret) is
// configured here and injected through constructors, never read ambiently.
type AppConfig struct {
	Environment string
	Port        string

	DatabaseURL string
	RedisURL    string

	AllowedOrigins []string

	AuthSecretKey  string
	AccessTokenTTL time.Duration
	BcryptCost     int

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	RateLimitEnabled bool
}

func Load() *AppConfig {
	return &AppConfig{
		Environment:      getEnv("ENVIRONMENT", "development"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		AllowedOrigins:   splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		AuthSecretKey:    os.Getenv("AUTH_SECRET_KEY"),
		AccessTokenTTL:   time.Duration(getEnvInt("AUTH_ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		BcryptCost:       getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		RateLimitEnabled: getEnv("RATE_LIMIT_ENABLED", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)

	if err != nil {
		return fallback
	}

	return parsed
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	origins := strings.Split(raw, ",")

	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
