// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string
	// Environment is "development" or "production".
	Environment string
	// StoreTimeoutSeconds bounds each persistence call from the UI.
	StoreTimeoutSeconds int
}

// Load reads configuration from a .env file (if present) and the
// process environment, falling back to defaults.
func Load() *Config {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	return &Config{
		DBPath:              getEnv("SITEPIN_DB", defaultDBPath()),
		Environment:         getEnv("SITEPIN_ENV", "development"),
		StoreTimeoutSeconds: getEnvAsInt("SITEPIN_STORE_TIMEOUT", 10),
	}
}

func defaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "sitepin", "sitepin.db")
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
