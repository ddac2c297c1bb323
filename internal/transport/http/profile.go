package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

// ProfileService is the minimal interface needed for profile endpoints.
type ProfileService interface {
	GetProfile(ctx context.Context, email string) (domain.User, error)
	UpdateUsername(ctx context.Context, email, username string) (domain.User, error)
}

// HandleGetProfile returns an HTTP handler for the signed-in user's
// profile.
func HandleGetProfile(svc ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := emailFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		user, err := svc.GetProfile(r.Context(), email)
		if err != nil {
			switch err {
			case domain.ErrUserNotFound:
				writeError(w, http.StatusNotFound, codeUserNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}

// HandleUpdateProfile returns an HTTP handler for renaming the signed-in
// user.
func HandleUpdateProfile(svc ProfileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := emailFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		var req updateProfileRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		user, err := svc.UpdateUsername(r.Context(), email, req.Username)
		if err != nil {
			switch err {
			case domain.ErrUsernameRequired:
				writeError(w, http.StatusBadRequest, codeUsernameRequired, err.Error())
			case domain.ErrUserNotFound:
				writeError(w, http.StatusNotFound, codeUserNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}

type updateProfileRequest struct {
	Username string `json:"username"`
}
