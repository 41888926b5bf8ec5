package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/portfolio-server/internal/logger"
)

// withLogging emits an access line after the request is served. It runs
// after withTraceID so the line carries the request's trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", rw.size).
			Dur("elapsed", time.Since(started)).
			Msg("request served")
	})
}
