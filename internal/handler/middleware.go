package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/signsyncapp/signsync-api/internal/payload"
	"github.com/signsyncapp/signsync-api/shared/auth"
)

type contextKey struct{}

var sessionClaimsKey = contextKey{}

// RequireAuth validates the bearer token and injects the session
// claims into the request context. Expired tokens are reported
// distinctly from otherwise invalid ones.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondAuthError(w, "Token required")
			return
		}

		claims, err := h.jwtAuth.ValidateSessionToken(parts[1], h.cfg.Token.Secret)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				respondAuthError(w, "Token expired")
				return
			}

			respondAuthError(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionClaims returns the claims injected by RequireAuth.
func sessionClaims(r *http.Request) (*auth.SessionClaims, bool) {
	claims, ok := r.Context().Value(sessionClaimsKey).(*auth.SessionClaims)
	return claims, ok
}

func respondAuthError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnauthorized, payload.AuthErrorResponse{
		Success: false,
		Message: message,
	})
}
