package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, 60*time.Second, cfg.PDFTimeout)
	assert.Equal(t, 300*time.Second, cfg.CleanupInterval)
	assert.Equal(t, 15*time.Minute, cfg.PDFExpiry)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OUTPUT_DIR", "/tmp/letters")
	t.Setenv("PDF_TIMEOUT_SECONDS", "120")
	t.Setenv("PDF_EXPIRY_MINUTES", "30")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/letters", cfg.OutputDir)
	assert.Equal(t, 120*time.Second, cfg.PDFTimeout)
	assert.Equal(t, 30*time.Minute, cfg.PDFExpiry)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	assert.Equal(t, 8080, Load().Port)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty templates dir", func(c *Config) { c.TemplatesDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"non-positive interval", func(c *Config) { c.CleanupInterval = 0 }},
		{"non-positive expiry", func(c *Config) { c.PDFExpiry = -time.Minute }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := Load()
			tt.mutate(&bad)
			assert.Error(t, bad.Validate())
		})
	}
}
