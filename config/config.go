package config

import (
	"os"
)

// Config holds all runtime settings. Everything comes from environment
// variables (a .env file is loaded in main before this runs) with defaults
// suitable for local development.
type Config struct {
	Port              string
	DataDir           string
	AdminPassword     string
	AdminPasswordHash string // optional bcrypt hash; takes precedence over AdminPassword
	FrontendOrigin    string
}

func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "3001"),
		DataDir:           getEnv("DATA_DIR", "data"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "JOsh"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		FrontendOrigin:    os.Getenv("FE_ORIGIN"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
