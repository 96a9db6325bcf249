package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/letter-service/internal/preprocess"
	"github.com/jonathan/letter-service/internal/schemas"
	"github.com/jonathan/letter-service/internal/types"
)

// handleSuratTugas generates a surat tugas PDF and responds with a
// filename-keyed download reference.
func (s *Server) handleSuratTugas(w http.ResponseWriter, r *http.Request) {
	var req types.SuratTugasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), errorCode(err), err.Error())
		return
	}

	preprocess.NormalizeSchoolInfo(&req.SchoolInfo)
	letter := req.ToLetterRequest()

	// SURAT_TUGAS_{FIRST_ASSIGNEE}_{dd-mm-yyyy}.pdf
	subject := subjectComponent(req.Assignees[0].Nama)
	date := preprocess.ParseIndonesianDate(req.TanggalSurat)
	filename := fmt.Sprintf("SURAT_TUGAS_%s_%s.pdf", subject, date)

	doc, err := s.generate(r, letter, filename)
	if err != nil {
		s.renderFailure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.PDFResponse{
		Filename: doc.Filename,
		FileURL:  downloadPrefix + doc.Filename,
		FileSize: doc.Size,
	})
}

// handleLembarPersetujuan generates a lembar persetujuan PKL PDF.
func (s *Server) handleLembarPersetujuan(w http.ResponseWriter, r *http.Request) {
	var req types.LembarPersetujuanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), errorCode(err), err.Error())
		return
	}

	preprocess.NormalizeSchoolInfo(&req.SchoolInfo)
	letter := req.ToLetterRequest()

	// LEMBAR_PERSETUJUAN_{COMPANY}_{dd-mm-yyyy}.pdf, dated today.
	subject := subjectComponent(req.NamaPerusahaan)
	date := time.Now().Format("02-01-2006")
	filename := fmt.Sprintf("LEMBAR_PERSETUJUAN_%s_%s.pdf", subject, date)

	doc, err := s.generate(r, letter, filename)
	if err != nil {
		s.renderFailure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.PDFResponse{
		Filename: doc.Filename,
		FileURL:  downloadPrefix + doc.Filename,
		FileSize: doc.Size,
	})
}

// handleGenerate renders a generic letter and registers it under an opaque
// document id.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, codeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), errorCode(err), err.Error())
		return
	}

	letter := req.ToLetterRequest()

	filename := strings.ReplaceAll(req.Data.Nomor, "/", "-") + "_" + req.Type

	doc, err := s.generate(r, letter, filename)
	if err != nil {
		s.renderFailure(w, err)
		return
	}

	docID := uuid.New().String()
	s.registry.Put(docID, doc.Path)

	s.jsonResponse(w, http.StatusOK, types.GenerateLetterResponse{
		Success: true,
		Message: "PDF generated successfully",
		Data: map[string]any{
			"doc_id":       docID,
			"download_url": downloadPrefix + docID,
			"filename":     doc.Filename,
		},
	})
}

// generate runs the shared content-validate, render, save sequence.
func (s *Server) generate(r *http.Request, letter types.LetterRequest, filename string) (*types.GeneratedDocument, error) {
	if err := schemas.ValidateContent(letter.TemplateType, letter.Content); err != nil {
		return nil, err
	}

	pdf, err := s.renderer.Render(r.Context(), letter)
	if err != nil {
		return nil, err
	}

	path, err := s.renderer.Save(pdf, filename)
	if err != nil {
		return nil, err
	}

	size := int64(len(pdf))
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	return &types.GeneratedDocument{
		Filename: filepath.Base(path),
		Size:     size,
		Path:     path,
	}, nil
}

// renderFailure logs the full error server-side and writes the mapped,
// detail-free response.
func (s *Server) renderFailure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("letter generation failed", zap.Error(err))
	} else {
		s.logger.Warn("letter generation rejected", zap.Error(err))
	}
	s.errorResponse(w, status, errorCode(err), failureMessage(err))
}

// subjectComponent uppercases a name and replaces spaces with underscores for
// use in generated filenames.
func subjectComponent(name string) string {
	if name == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}
