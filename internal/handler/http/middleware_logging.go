package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

// accessLog writes one line per request with status, size and latency. It
// reads the request logger, so it must run after the trace id middleware.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return accessLog(next)
}
