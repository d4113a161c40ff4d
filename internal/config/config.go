// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/StefanCiuprina/sheet-music-reader/internal/logging"
	"github.com/StefanCiuprina/sheet-music-reader/internal/playback"
)

// DefaultEnvFile is read, when present, before the process environment.
const DefaultEnvFile = ".env"

// Config holds service configuration
type Config struct {
	// Logging
	LogLevel logging.Level

	// Recognition
	Threshold    uint8
	ParallelScan bool

	// Playback
	Tempo playback.Tempo

	// OCR
	OCRLanguage string

	// HTTP API
	HTTPAddr       string
	CORSOrigins    []string
	MaxUploadBytes int64
}

// Load reads envFiles (ignoring the ones that do not exist) and then builds
// the configuration from the environment. Variables already set in the
// environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}
	return LoadConfig()
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	level, err := logging.ParseLevel(getEnvOrDefault("SHEET_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("SHEET_LOG_LEVEL: %w", err)
	}

	tempo, err := playback.ParseTempo(getEnvOrDefault("SHEET_TEMPO", "fast"))
	if err != nil {
		return nil, fmt.Errorf("SHEET_TEMPO: %w", err)
	}

	threshold := getEnvAsIntOrDefault("SHEET_THRESHOLD", 100)

	cfg := &Config{
		LogLevel:       level,
		ParallelScan:   getEnvAsBoolOrDefault("SHEET_PARALLEL_SCAN", false),
		Tempo:          tempo,
		OCRLanguage:    getEnvOrDefault("SHEET_OCR_LANGUAGE", "eng"),
		HTTPAddr:       getEnvOrDefault("SHEET_HTTP_ADDR", ":8080"),
		CORSOrigins:    splitList(getEnvOrDefault("SHEET_CORS_ORIGINS", "*")),
		MaxUploadBytes: getEnvAsInt64OrDefault("SHEET_MAX_UPLOAD_BYTES", 20<<20), // 20MB
	}

	if threshold < 1 || threshold > 255 {
		return nil, fmt.Errorf("configuration validation failed: SHEET_THRESHOLD must be between 1 and 255, got %d", threshold)
	}
	cfg.Threshold = uint8(threshold)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Threshold == 0 {
		return fmt.Errorf("threshold must be positive")
	}

	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %v", c.Tempo)
	}

	if c.OCRLanguage == "" {
		return fmt.Errorf("SHEET_OCR_LANGUAGE is required")
	}

	if c.HTTPAddr == "" {
		return fmt.Errorf("SHEET_HTTP_ADDR is required")
	}

	if c.MaxUploadBytes < 1024 || c.MaxUploadBytes > 1<<30 { // 1KB to 1GB
		return fmt.Errorf("SHEET_MAX_UPLOAD_BYTES must be between 1KB and 1GB, got %d", c.MaxUploadBytes)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
