package server

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const downloadPrefix = "/api/v1/letters/download/"

// allowedRefPattern mirrors the sanitizer's allow-list: letters, digits,
// spaces, underscores, hyphens, dots.
var allowedRefPattern = regexp.MustCompile(`^[\w\-. ]+$`)

// blockedRefPatterns are rejected anywhere in a download reference.
var blockedRefPatterns = []string{"..", `\`, "~/", "/etc/", "/var/"}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("took", time.Since(start)))
	})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withDownloadGuard validates download references before they reach a
// handler. Retrieval re-validates independently of the generation path: a
// filename that was valid at creation time must still be checked here in
// case the directory or registry was tampered with externally.
func (s *Server) withDownloadGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, downloadPrefix) {
			ref := strings.TrimPrefix(r.URL.Path, downloadPrefix)
			if !isValidRef(ref) {
				s.logger.Warn("rejected download reference",
					zap.String("ref", ref),
					zap.String("remote", r.RemoteAddr))
				s.errorResponse(w, http.StatusBadRequest, codeInvalidFilename, "Invalid filename")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// isValidRef checks a download reference against the blocked patterns and
// the allow-list.
func isValidRef(ref string) bool {
	if ref == "" {
		return false
	}
	for _, pattern := range blockedRefPatterns {
		if strings.Contains(ref, pattern) {
			return false
		}
	}
	return allowedRefPattern.MatchString(ref)
}
