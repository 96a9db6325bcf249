package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/letter-service/internal/sanitize"
)

// handleDownload serves a generated PDF as an attachment. The reference is
// either an opaque document id from the registry or a sanitized filename.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	s.servePDF(w, r, r.PathValue("ref"), "attachment")
}

// handlePreview serves a registry document inline for in-browser display.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("doc_id")
	if _, err := uuid.Parse(docID); err != nil {
		s.errorResponse(w, http.StatusBadRequest, codeInvalidRequest, "Invalid document ID format")
		return
	}
	s.servePDF(w, r, docID, "inline")
}

// servePDF resolves ref to a file on disk and streams it with the given
// disposition. Filenames are re-validated here independently of the
// generation path.
func (s *Server) servePDF(w http.ResponseWriter, r *http.Request, ref, disposition string) {
	path, ok := s.resolveRef(ref)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, codeNotFound, "Document not found")
		return
	}

	// The basename must still pass the sanitizer even when it came from the
	// registry; the output directory may have been tampered with externally.
	safe, err := sanitize.Filename(filepath.Base(path))
	if err != nil {
		s.logger.Warn("stored document failed filename re-validation",
			zap.String("ref", ref), zap.Error(err))
		s.errorResponse(w, http.StatusBadRequest, codeInvalidFilename, "Invalid filename")
		return
	}

	if _, err := os.Stat(path); err != nil {
		s.errorResponse(w, http.StatusNotFound, codeNotFound, "PDF file not found on disk")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, safe))
	http.ServeFile(w, r, path)
}

// resolveRef maps a download reference to a path on disk. Opaque ids go
// through the registry, with lazy eviction of entries whose backing file is
// gone; anything else is treated as a filename inside the output directory.
func (s *Server) resolveRef(ref string) (string, bool) {
	if _, err := uuid.Parse(ref); err == nil {
		path, ok := s.registry.Get(ref)
		if !ok {
			return "", false
		}
		if _, err := os.Stat(path); err != nil {
			s.registry.Delete(ref)
			return "", false
		}
		return path, true
	}

	safe, err := sanitize.Filename(ref)
	if err != nil {
		return "", false
	}
	return filepath.Join(s.renderer.OutputDir(), safe), true
}
