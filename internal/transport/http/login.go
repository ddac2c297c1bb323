package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

// LoginService is the minimal interface needed for session endpoints.
type LoginService interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
}

// HandleLogin returns an HTTP handler that exchanges credentials for a
// session token.
func HandleLogin(svc LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		session, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch err {
			case domain.ErrInvalidCredentials:
				writeError(w, http.StatusUnauthorized, codeInvalidCredentials, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

// HandleLogout returns an HTTP handler that drops the caller's session.
// Logging out an already-dead session succeeds.
func HandleLogout(svc LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
