// Package config provides environment-driven configuration for the letter service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings. Values come from the environment; a
// .env file loaded in main can supply them during development.
type Config struct {
	Port int

	TemplatesDir string
	OutputDir    string
	StaticDir    string

	// PDFTimeout bounds a single headless-Chrome print.
	PDFTimeout time.Duration

	// CleanupInterval is the wait between sweeps; PDFExpiry is the age at
	// which a generated PDF becomes eligible for deletion.
	CleanupInterval time.Duration
	PDFExpiry       time.Duration
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		Port:            getEnvInt("PORT", 8080),
		TemplatesDir:    getEnv("TEMPLATES_DIR", "templates"),
		OutputDir:       getEnv("OUTPUT_DIR", "output"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		PDFTimeout:      getEnvDuration("PDF_TIMEOUT_SECONDS", 60) * time.Second,
		CleanupInterval: getEnvDuration("CLEANUP_INTERVAL_SECONDS", 300) * time.Second,
		PDFExpiry:       getEnvDuration("PDF_EXPIRY_MINUTES", 15) * time.Minute,
	}
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.TemplatesDir == "" {
		return fmt.Errorf("config error: templates directory must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config error: output directory must not be empty")
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("config error: cleanup interval must be positive")
	}
	if c.PDFExpiry <= 0 {
		return fmt.Errorf("config error: pdf expiry must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue))
}
