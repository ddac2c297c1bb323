package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnuragChougule/venuebook/internal/app"
	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/metrics"
)

// SignupService is the minimal interface needed for signup endpoints.
type SignupService interface {
	RequestCode(ctx context.Context, email string) error
	Signup(ctx context.Context, in app.SignupInput) (domain.User, error)
}

// HandleRequestCode returns an HTTP handler that emails a verification
// code to the given address.
func HandleRequestCode(svc SignupService, recorder metrics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requestCodeRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if err := svc.RequestCode(r.Context(), req.Email); err != nil {
			switch err {
			case domain.ErrEmailRequired:
				writeError(w, http.StatusBadRequest, codeEmailRequired, err.Error())
			case domain.ErrDeliveryFailed:
				recorder.RecordCodeDeliveryFailure()
				writeError(w, http.StatusBadGateway, codeDeliveryFailed, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		recorder.RecordCodeIssued()
		writeJSON(w, http.StatusAccepted, messageResponse{Message: "verification code sent"})
	}
}

// HandleSignup returns an HTTP handler that verifies the emailed code
// and creates the account.
func HandleSignup(svc SignupService, recorder metrics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		user, err := svc.Signup(r.Context(), app.SignupInput{
			Email:    req.Email,
			Username: req.Username,
			Password: req.Password,
			Code:     req.Code,
		})
		if err != nil {
			switch err {
			case domain.ErrEmailRequired:
				writeError(w, http.StatusBadRequest, codeEmailRequired, err.Error())
			case domain.ErrUsernameRequired:
				writeError(w, http.StatusBadRequest, codeUsernameRequired, err.Error())
			case domain.ErrInvalidCredentials:
				writeError(w, http.StatusBadRequest, codeInvalidCredentials, err.Error())
			case domain.ErrNoActiveRequest:
				writeError(w, http.StatusBadRequest, codeNoActiveCode, err.Error())
			case domain.ErrCodeExpired:
				writeError(w, http.StatusBadRequest, codeCodeExpired, err.Error())
			case domain.ErrCodeMismatch:
				writeError(w, http.StatusBadRequest, codeCodeMismatch, err.Error())
			case domain.ErrEmailTaken:
				writeError(w, http.StatusConflict, codeEmailTaken, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		recorder.RecordSignup()
		writeJSON(w, http.StatusCreated, toUserResponse(user))
	}
}

type requestCodeRequest struct {
	Email string `json:"email"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
