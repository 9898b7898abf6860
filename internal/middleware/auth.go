package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// TokenVerifier validates a bearer token and returns the user identity it
// carries. Implemented by service.AuthService.
type TokenVerifier interface {
	Verify(token string) (userID int64, email string, err error)
}

// NewAuthHandler returns a middleware that enforces
// "Authorization: Bearer <token>" on every request it wraps.
//
// The 401 message distinguishes three cases: no Authorization header at all
// ("token ausente"), a header without a usable bearer token ("token
// inválido"), and a token that fails verification ("token inválido ou
// expirado"). On success the authenticated user id is stored in the request
// context for downstream handlers.
func NewAuthHandler(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeUnauthorized(w, "token ausente")
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeUnauthorized(w, "token inválido")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				writeUnauthorized(w, "token inválido")
				return
			}

			userID, _, err := verifier.Verify(raw)
			if err != nil {
				writeUnauthorized(w, "token inválido ou expirado")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// writeUnauthorized renders a 401 in the API's standard error shape.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"erro": message})
}
