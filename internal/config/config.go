package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DBPath             string
	Timezone           string
	CORSAllowedOrigins string
}

// Load reads configuration from an optional .env file and the environment,
// falling back to defaults suitable for local use.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getenv("PORT", "8080"),
		DBPath:             getenv("DB_PATH", filepath.Join("data", "aurelog.db")),
		Timezone:           getenv("TZ", "UTC"),
		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),
	}
}

func getenv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
