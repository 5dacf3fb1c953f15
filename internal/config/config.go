package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	APIBaseURL      string
	DataDir         string
	DefaultLanguage string
	DefaultTheme    string
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		APIBaseURL:      envOrDefault("API_BASE_URL", "http://localhost:8080"),
		DataDir:         envOrDefault("DATA_DIR", defaultDataDir()),
		DefaultLanguage: envOrDefault("DEFAULT_LANGUAGE", "en"),
		DefaultTheme:    envOrDefault("DEFAULT_THEME", "light"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

// LocalDBPath is the sqlite file holding device-local state.
func (c Config) LocalDBPath() string {
	return filepath.Join(c.DataDir, "storefront.db")
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "storefront")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
