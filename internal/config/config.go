package config

import (
	"os"
)

type Config struct {
	Port          string
	Environment   string
	CORSOrigins   string
	SeedFile      string
	SessionSecret string
	LogDir        string // empty = stdout only
	MaxLogFiles   int
	Debug         bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		SeedFile:      getEnv("SEED_FILE", "seed/sections.json"),
		SessionSecret: getEnv("SESSION_SECRET", defaultSecret(env)),
		LogDir:        getEnv("LOG_DIR", ""),
		MaxLogFiles:   10,
		Debug:         getEnv("DEBUG", defaultDebug(env)) == "true",
	}
}

// defaultSecret provides a fixed dev secret so the server starts
// without configuration. Outside dev there is no default; an empty
// secret fails fast at startup.
func defaultSecret(env string) string {
	if env == "dev" {
		return "docshelf-dev-secret"
	}
	return ""
}

func defaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
