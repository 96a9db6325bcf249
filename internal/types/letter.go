// Package types provides type definitions for letter requests and responses used throughout the letter service.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SchoolInfo carries the letterhead (kop surat) fields.
type SchoolInfo struct {
	NamaSekolah string `json:"nama_sekolah" validate:"required"`
	AlamatJalan string `json:"alamat_jalan" validate:"required"`
	Kelurahan   string `json:"kelurahan,omitempty"`
	Kecamatan   string `json:"kecamatan,omitempty"`
	KabKota     string `json:"kab_kota" validate:"required"`
	Provinsi    string `json:"provinsi" validate:"required"`
	KodePos     string `json:"kode_pos,omitempty"`
	Telepon     string `json:"telepon,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

// Person is used polymorphically as signatory, assignee, student or recipient.
// Immutable after construction.
type Person struct {
	Nama     string `json:"nama" validate:"required"`
	Jabatan  string `json:"jabatan,omitempty"`
	NIP      string `json:"nip,omitempty"`
	Pangkat  string `json:"pangkat,omitempty"`
	Instansi string `json:"instansi,omitempty"`
}

// KeyValueItem renders one detail row, e.g. "Waktu : 08.00".
// Ordering is significant and preserved as given.
type KeyValueItem struct {
	Label     string `json:"label" validate:"required"`
	Value     string `json:"value" validate:"required"`
	Separator string `json:"separator,omitempty"`
}

// Sep returns the display separator, defaulting to ":".
func (k KeyValueItem) Sep() string {
	if k.Separator == "" {
		return ":"
	}
	return k.Separator
}

// SuratTugasRequest is the strictly typed request for surat tugas generation.
type SuratTugasRequest struct {
	NomorSurat   string `json:"nomor_surat" validate:"required"`
	TanggalSurat string `json:"tanggal_surat" validate:"required"`
	TempatSurat  string `json:"tempat_surat,omitempty"`
	Perihal      string `json:"perihal,omitempty"`

	SchoolInfo    SchoolInfo `json:"school_info" validate:"required"`
	Penandatangan Person     `json:"penandatangan" validate:"required"`

	Assignees []Person       `json:"assignees" validate:"required,min=1,dive"`
	Details   []KeyValueItem `json:"details" validate:"omitempty,dive"`

	Pembuka string `json:"pembuka,omitempty"`
	Penutup string `json:"penutup,omitempty"`
}

// LembarPersetujuanRequest is the strictly typed request for lembar persetujuan PKL.
type LembarPersetujuanRequest struct {
	SchoolInfo SchoolInfo `json:"school_info" validate:"required"`

	Students []Person `json:"students" validate:"required,min=1,dive"`

	NamaPerusahaan string `json:"nama_perusahaan" validate:"required"`

	TempatTanggal string `json:"tempat_tanggal,omitempty"`
}

// LetterData is the body of a generic letter for the registry-based endpoint.
type LetterData struct {
	Nomor         string `json:"nomor" validate:"required"`
	Tanggal       string `json:"tanggal" validate:"required"`
	Perihal       string `json:"perihal" validate:"required"`
	Penerima      Person `json:"penerima" validate:"required"`
	Isi           string `json:"isi" validate:"required"`
	Penandatangan Person `json:"penandatangan" validate:"required"`
}

// GenerateLetterRequest wraps LetterData with the generic template selector.
type GenerateLetterRequest struct {
	Type string     `json:"type" validate:"required,oneof=surat_dinas surat_edaran surat_pemberitahuan"`
	Data LetterData `json:"data" validate:"required"`
}

// LetterRequest is the canonical shape the renderer consumes. Every
// externally-facing request type declares a total conversion into it; the
// renderer never branches on the original external shape.
type LetterRequest struct {
	TemplateType string `json:"template_type"`
	NomorSurat   string `json:"nomor_surat"`
	Perihal      string `json:"perihal"`
	TanggalSurat string `json:"tanggal_surat"`
	TempatSurat  string `json:"tempat_surat,omitempty"`

	SchoolInfo    SchoolInfo `json:"school_info"`
	Penandatangan Person     `json:"penandatangan"`

	// Content holds template-specific fields (assignee lists, detail rows).
	Content map[string]any `json:"content"`
}

// GeneratedDocument describes one rendered PDF artifact.
type GeneratedDocument struct {
	Filename string
	Size     int64
	Path     string
	DocID    string
}

// PDFResponse is returned by the filename-keyed generation endpoints.
type PDFResponse struct {
	Filename string `json:"filename"`
	FileURL  string `json:"file_url"`
	FileSize int64  `json:"file_size"`
}

// GenerateLetterResponse is returned by the registry-based generation endpoint.
type GenerateLetterResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ToLetterRequest converts a surat tugas request into the canonical letter shape.
func (r *SuratTugasRequest) ToLetterRequest() LetterRequest {
	perihal := r.Perihal
	if perihal == "" {
		perihal = "SURAT TUGAS"
	}
	return LetterRequest{
		TemplateType:  "surat_tugas",
		NomorSurat:    r.NomorSurat,
		Perihal:       perihal,
		TanggalSurat:  r.TanggalSurat,
		TempatSurat:   r.TempatSurat,
		SchoolInfo:    r.SchoolInfo,
		Penandatangan: r.Penandatangan,
		Content: map[string]any{
			"assignees": r.Assignees,
			"details":   r.Details,
			"pembuka":   r.Pembuka,
			"penutup":   r.Penutup,
		},
	}
}

// ToLetterRequest converts a lembar persetujuan request into the canonical
// letter shape. The letter number and date are placeholders; the template does
// not display them.
func (r *LembarPersetujuanRequest) ToLetterRequest() LetterRequest {
	return LetterRequest{
		TemplateType:  "lembar_persetujuan",
		NomorSurat:    "PKL/PST/001",
		Perihal:       "LEMBAR PERSETUJUAN",
		TanggalSurat:  time.Now().Format("2 January 2006"),
		SchoolInfo:    r.SchoolInfo,
		Penandatangan: r.Students[0],
		Content: map[string]any{
			"students":        r.Students,
			"nama_perusahaan": r.NamaPerusahaan,
			"tempat_tanggal":  r.TempatTanggal,
		},
	}
}

// ToLetterRequest converts a registry-endpoint request into the canonical
// letter shape. The generic letters carry no letterhead data, so SchoolInfo
// stays zero-valued.
func (r *GenerateLetterRequest) ToLetterRequest() LetterRequest {
	return LetterRequest{
		TemplateType:  r.Type,
		NomorSurat:    r.Data.Nomor,
		Perihal:       r.Data.Perihal,
		TanggalSurat:  r.Data.Tanggal,
		Penandatangan: r.Data.Penandatangan,
		Content: map[string]any{
			"penerima": r.Data.Penerima,
			"isi":      r.Data.Isi,
		},
	}
}

// Validate validates the SuratTugasRequest using the validator.
func (r *SuratTugasRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LembarPersetujuanRequest using the validator.
func (r *LembarPersetujuanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateLetterRequest using the validator.
func (r *GenerateLetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
