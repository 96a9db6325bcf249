package preprocess

import (
	"strings"

	"github.com/jonathan/letter-service/internal/types"
)

// NormalizeSchoolInfo clears the kelurahan and kecamatan fields when their
// value already appears inside the street address, so the letterhead does not
// render duplicates like "Tunjungtirto, Tunjungtirto". The address itself is
// never edited. The function is total and idempotent.
func NormalizeSchoolInfo(s *types.SchoolInfo) {
	if s.Kelurahan != "" && strings.Contains(s.AlamatJalan, s.Kelurahan) {
		s.Kelurahan = ""
	}
	if s.Kecamatan != "" && strings.Contains(s.AlamatJalan, s.Kecamatan) {
		s.Kecamatan = ""
	}
}
