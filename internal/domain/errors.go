package domain

import "errors"

var (
	ErrInvalidLocation    = errors.New("unknown location")
	ErrInvalidFilter      = errors.New("invalid filter bounds")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrVenueNameRequired  = errors.New("venue name required")
	ErrVenueAreaRequired  = errors.New("venue area required")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidCapacity    = errors.New("invalid capacity")
	ErrDateConflict       = errors.New("date already booked")
	ErrDateInPast         = errors.New("date is in the past")
	ErrDateRequired       = errors.New("date required")
	ErrFullNameRequired   = errors.New("full name required")
	ErrEventTypeRequired  = errors.New("event type required")
	ErrNoActiveRequest    = errors.New("no code requested for this email")
	ErrCodeExpired        = errors.New("code expired")
	ErrCodeMismatch       = errors.New("code mismatch")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email required")
	ErrUsernameRequired   = errors.New("username required")
	ErrDeliveryFailed     = errors.New("code delivery failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
	ErrInvalidID          = errors.New("invalid id")
)
