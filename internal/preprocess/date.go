// Package preprocess cleans request data before it reaches the renderer.
package preprocess

import "strings"

// monthNumbers maps lowercase Indonesian month names to their two-digit form.
var monthNumbers = map[string]string{
	"januari": "01", "februari": "02", "maret": "03", "april": "04",
	"mei": "05", "juni": "06", "juli": "07", "agustus": "08",
	"september": "09", "oktober": "10", "november": "11", "desember": "12",
}

// ParseIndonesianDate converts "1 Juli 2024" into "01-07-2024" for use in
// generated filenames. The month lookup is case-insensitive; unrecognized
// month names map to the literal "00" sentinel rather than failing. Inputs
// with fewer than three fields fall back to a mechanical transform that
// replaces spaces and slashes with hyphens. The result is a best-effort
// display string, never a validated date.
func ParseIndonesianDate(s string) string {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) >= 3 {
		day := parts[0]
		if len(day) < 2 {
			day = "0" + day
		}
		month, ok := monthNumbers[strings.ToLower(parts[1])]
		if !ok {
			month = "00"
		}
		return day + "-" + month + "-" + parts[2]
	}

	return strings.NewReplacer(" ", "-", "/", "-").Replace(s)
}
