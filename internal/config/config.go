package config

import (
	"os"
	"strings"
)

// Config holds process settings read from the environment (after .env loading).
type Config struct {
	DataPath    string
	ReportPath  string
	SeedPath    string
	DatabaseURL string
	LogLevel    string
	Port        string
}

func Load() Config {
	return Config{
		DataPath:    Get("DATA_PATH", "data.json"),
		ReportPath:  Get("REPORT_PATH", "report.json"),
		SeedPath:    Get("SEED_PATH", "data.json"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:    Get("LOG_LEVEL", "info"),
		Port:        Get("PORT", "8080"),
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
