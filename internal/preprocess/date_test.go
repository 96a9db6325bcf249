package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIndonesianDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single digit day padded", "1 Juli 2024", "01-07-2024"},
		{"two digit day", "31 Desember 2026", "31-12-2026"},
		{"lowercase month", "5 januari 2025", "05-01-2025"},
		{"uppercase month", "17 AGUSTUS 2045", "17-08-2045"},
		{"unknown month sentinel", "12 Foo 2024", "12-00-2024"},
		{"surrounding whitespace", "  1 Juli 2024  ", "01-07-2024"},
		{"extra fields ignored", "1 Juli 2024 pukul 08.00", "01-07-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIndonesianDate(tt.input))
		})
	}
}

func TestParseIndonesianDate_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"slash date", "2024/07/01", "2024-07-01"},
		{"two fields", "Juli 2024", "Juli-2024"},
		{"opaque string", "garbage", "garbage"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIndonesianDate(tt.input))
		})
	}
}
