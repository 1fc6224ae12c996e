package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

const traceIDHeader = "X-Trace-ID"

// traceID reuses the caller's X-Trace-ID or mints one, echoes it in the
// response and binds a child of base carrying it to the request context.
func traceID(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(traceIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			l := base.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", id)
			})

			w.Header().Set(traceIDHeader, id)
			next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
		})
	}
}

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return traceID(h.logger)(next)
}
