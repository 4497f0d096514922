// Package config reads service configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config is the externally-supplied configuration surface: listen port,
// store connection, and cross-origin policy.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	AllowedOrigins []string
}

// Load builds a Config from environment variables, falling back to local
// development defaults. Callers load .env beforehand (godotenv in main).
func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "todoapp"),
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
