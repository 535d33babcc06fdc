package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup. It is assembled
// once in main and passed down; nothing reads the environment after Load.
type Config struct {
	GeminiAPIKey     string
	GeminiModel      string
	Port             string
	MaxPDFBytes      int64
	RequestTimeout   time.Duration
	UnidocLicenseKey string
}

// Load reads the configuration from the environment. A missing
// GEMINI_API_KEY is a startup failure, not a per-request error.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	return &Config{
		GeminiAPIKey:     apiKey,
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		Port:             getEnv("PORT", "8080"),
		MaxPDFBytes:      int64(getEnvAsInt("MAX_PDF_BYTES", 20*1024*1024)),
		RequestTimeout:   time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 120)) * time.Second,
		UnidocLicenseKey: os.Getenv("UNIDOC_LICENSE_KEY"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
