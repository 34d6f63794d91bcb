package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds everything the process reads from the environment.
type AppConfig struct {
	Env          string
	Port         string
	DatabaseURL  string
	DatabaseName string
}

// Load reads the .env file (if present) and builds the application config.
// A missing DATABASE_URL or DATABASE_NAME is not fatal here: the store
// degrades to an unavailable state and the process keeps serving the
// health endpoints.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := AppConfig{
		Env:          os.Getenv("ENV"),
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
	}

	if cfg.Env == "" {
		cfg.Env = "local"
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	return cfg
}

// DatabaseConfigured reports whether both database settings are present.
func (c AppConfig) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}
