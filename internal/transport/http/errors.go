package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidLocation    = "invalid_location"
	codeInvalidFilter      = "invalid_filter"
	codeVenueNotFound      = "venue_not_found"
	codeVenueNameRequired  = "venue_name_required"
	codeVenueAreaRequired  = "venue_area_required"
	codeInvalidPrice       = "invalid_price"
	codeInvalidCapacity    = "invalid_capacity"
	codeDateConflict       = "date_conflict"
	codeDateInPast         = "date_in_past"
	codeDateRequired       = "date_required"
	codeInvalidDate        = "invalid_date"
	codeFullNameRequired   = "full_name_required"
	codeEventTypeRequired  = "event_type_required"
	codeNoActiveCode       = "no_active_code"
	codeCodeExpired        = "code_expired"
	codeCodeMismatch       = "code_mismatch"
	codeEmailTaken         = "email_taken"
	codeEmailRequired      = "email_required"
	codeUsernameRequired   = "username_required"
	codeDeliveryFailed     = "delivery_failed"
	codeInvalidCredentials = "invalid_credentials"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeUserNotFound       = "user_not_found"
	codeInvalidAmount      = "invalid_amount"
	codePaymentUnavailable = "payment_unavailable"
	codeInvalidID          = "invalid_id"
	codeRateLimited        = "rate_limit_exceeded"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
