package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/utils"
)

// checkBodyHash verifies the HashSHA256 header against the HMAC of the raw
// request body. The body is restored for the next handler. It is a
// pass-through when no hash key is configured.
func (h *Handler) checkBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.app.HashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		got := r.Header.Get(utils.HashHeader)
		if got == "" {
			log.Warn().Str("func", "Handler.checkBodyHash").Msg("request is not signed")
			utils.WriteError(w, ErrMissingBodyHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "Handler.checkBodyHash").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		want := hex.EncodeToString(utils.Hash(body))
		if !hmac.Equal([]byte(got), []byte(want)) {
			log.Warn().
				Str("func", "Handler.checkBodyHash").
				Str("hash from request", got).
				Str("hashed body", want).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheck.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
