package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseJWTSecret string
	FrontendURL       string
	// Browser extension origin (chrome-extension://<id>), allowed to call
	// the credentialed endpoints cross-origin.
	ExtensionOrigin string
	// Redis/Upstash Configuration (extension session state)
	RedisURL      string
	RedisPassword string
	// OpenAI Configuration (job posting analysis)
	OpenAIAPIKey  string
	AIModel       string
	AITemperature float64
}

func LoadConfig() (*Config, error) {
	// .env only exists locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Trim trailing slash to prevent double slashes when joining paths
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		ExtensionOrigin:   getEnv("EXTENSION_ORIGIN", ""),
		RedisURL:          getEnv("UPSTASH_REDIS_URL", getEnv("REDIS_URL", "")),
		RedisPassword:     getEnv("UPSTASH_REDIS_PASSWORD", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		AIModel:           getEnv("AI_MODEL", "gpt-4o-mini"),
		AITemperature:     getEnvFloat("AI_TEMPERATURE", 0),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("WARNING: OPENAI_API_KEY not configured. Job analysis will be unavailable.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: Redis not configured. Extension session state will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
