package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the settings the original deployment hard-coded. Every
// value can be overridden by environment (or a .env file); the defaults
// match the source deployment.
type Config struct {
	MongoURI  string
	DBName    string
	Port      string
	JWTSecret []byte
	TokenTTL  time.Duration
}

func Load() *Config {
	godotenv.Load() // best effort; plain env still applies

	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		DBName:    getEnv("DB_NAME", "airline"),
		Port:      getEnv("PORT", "8070"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "airline-admin-secret")),
		TokenTTL:  time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
