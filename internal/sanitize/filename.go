package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"
)

// MaxPDFSize bounds disk consumption from a single request.
const MaxPDFSize = 10 << 20 // 10 MiB

// Extension is the canonical extension appended to sanitized filenames.
const Extension = ".pdf"

// safeStemPattern allows letters, digits, spaces, underscores, hyphens and dots.
var safeStemPattern = regexp.MustCompile(`^[\w\s.-]+$`)

// Filename validates raw and returns a safe basename ending in .pdf.
//
// Traversal markers are rejected before any normalization: stripping can be
// bypassed (a name like "....//" collapses into "../" after a naive single
// pass), so the function fails closed instead of repairing the input. The
// function is pure and performs no I/O; it is idempotent for names that are
// already valid.
func Filename(raw string) (string, error) {
	if strings.Contains(raw, "..") || strings.Contains(raw, "/") || strings.Contains(raw, `\`) {
		return "", &InvalidFilenameError{Name: raw, Reason: "path traversal attempts are not allowed"}
	}

	// Defense in depth against any remaining directory component.
	name := filepath.Base(raw)

	// filepath.Base("") is ".", which would slip through the stem pattern and
	// come back as "..pdf"; an empty or dot-only stem means no usable name is
	// left once the extension is stripped.
	stem := strings.ReplaceAll(name, Extension, "")
	if strings.Trim(stem, ". ") == "" {
		return "", &InvalidFilenameError{Name: raw, Reason: "filename cannot be empty"}
	}
	if !safeStemPattern.MatchString(stem) {
		return "", &InvalidFilenameError{
			Name:   raw,
			Reason: "filename must contain only alphanumeric characters, spaces, underscores, hyphens, and dots",
		}
	}

	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}

	return name, nil
}

// CheckSize rejects artifacts larger than MaxPDFSize. It runs before the
// filename sanitizer in the persist path.
func CheckSize(b []byte) error {
	if len(b) > MaxPDFSize {
		return &PayloadTooLargeError{Size: len(b), Limit: MaxPDFSize}
	}
	return nil
}
