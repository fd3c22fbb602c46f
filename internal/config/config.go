package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiAPIURL  string        `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"30s"`
	DatabaseURL   string        `env:"DATABASE_URL" envDefault:"users.db"`
	HTTPPort      string        `env:"HTTP_PORT" envDefault:"5001"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads a .env file if one exists and parses the environment into a
// Config. A missing GEMINI_API_KEY is not fatal here: the auth endpoints work
// without it, and generation requests report it as a server error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
