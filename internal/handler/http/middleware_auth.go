package http

import (
	"net/http"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/utils"
)

// auth checks the terminal bearer token and stores the terminal id in the
// request context. It is a pass-through when no sign key is configured.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.app.TokenSignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "Handler.auth").Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.auth").Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateTerminalToken(tokenString, h.app.TokenSignKey, h.app.TokenIssuer)
		if err != nil {
			log.Warn().Err(err).Str("func", "Handler.auth").Msg("rejected terminal token")
			utils.WriteError(w, ErrInvalidTerminalToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := utils.WithTerminalID(r.Context(), token.TerminalID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
