// Package config reads BuildLedger's runtime configuration from the
// environment. The keys in use are DATABASE_URL, JWT_SECRET, PORT,
// FRONTEND_URL, GEMINI_API_KEY and GENAI_ENDPOINT.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file when one exists. In deployed
// environments the variables come from the process environment instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Addr returns the listen address for the API server, derived from PORT.
func Addr() string {
	return ":" + GetEnv("PORT", "8080")
}
