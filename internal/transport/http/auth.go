package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

// Authenticator resolves a session token to the signed-in user's email.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

type contextKey string

const emailContextKey contextKey = "userEmail"

// SessionAuth requires a valid bearer token and stores the session
// owner's email in the request context.
func SessionAuth(auth Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
				return
			}

			email, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if err == domain.ErrSessionNotFound {
					writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid or expired session")
					return
				}
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), emailContextKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func emailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailContextKey).(string)
	return email, ok && email != ""
}
