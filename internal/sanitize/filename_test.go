package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename_ValidNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already has extension", "SURAT_TUGAS_BUDI_01-07-2024.pdf", "SURAT_TUGAS_BUDI_01-07-2024.pdf"},
		{"extension appended", "letter", "letter.pdf"},
		{"spaces allowed", "surat tugas 2024.pdf", "surat tugas 2024.pdf"},
		{"dots in stem", "v1.2-final", "v1.2-final.pdf"},
		{"foreign extension keeps stem", "report.txt", "report.txt.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filename(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilename_IdempotentForValidNames(t *testing.T) {
	first, err := Filename("SURAT_TUGAS_BUDI_01-07-2024.pdf")
	require.NoError(t, err)

	second, err := Filename(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilename_RejectsTraversal(t *testing.T) {
	inputs := []string{
		"../etc/passwd",
		"..\\windows\\system32",
		"foo/../bar.pdf",
		"a/b.pdf",
		`a\b.pdf`,
		"..",
		// A naive strip-".."-once pass would collapse this into "../",
		// so it must be rejected outright rather than repaired.
		"....//",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Filename(input)
			var invalidErr *InvalidFilenameError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, input, invalidErr.Name)
			assert.Contains(t, invalidErr.Reason, "traversal")
		})
	}
}

func TestFilename_RejectsDisallowedCharacters(t *testing.T) {
	inputs := []string{
		"surat<script>.pdf",
		"file;rm -rf.pdf",
		"salinan:surat.pdf",
		"surat*.pdf",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Filename(input)
			var invalidErr *InvalidFilenameError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestFilename_RejectsEmpty(t *testing.T) {
	// filepath.Base("") is ".", so the empty string must not come back as
	// "..pdf"; dot-only and blank stems are equally unusable.
	for _, input := range []string{"", ".pdf", ".", " ", " .pdf", ". .pdf"} {
		t.Run("input "+input, func(t *testing.T) {
			got, err := Filename(input)
			var invalidErr *InvalidFilenameError
			require.ErrorAs(t, err, &invalidErr, "got %q", got)
			assert.Contains(t, invalidErr.Reason, "empty")
		})
	}
}

func TestCheckSize_WithinLimit(t *testing.T) {
	assert.NoError(t, CheckSize(nil))
	assert.NoError(t, CheckSize([]byte("%PDF-1.4")))
	assert.NoError(t, CheckSize(make([]byte, MaxPDFSize)))
}

func TestCheckSize_ExceedsLimit(t *testing.T) {
	err := CheckSize(make([]byte, MaxPDFSize+1))

	var tooLarge *PayloadTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, MaxPDFSize+1, tooLarge.Size)
	assert.Equal(t, MaxPDFSize, tooLarge.Limit)
}
