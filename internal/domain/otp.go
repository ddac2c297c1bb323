package domain

import "time"

// OTPRecord is a single-use signup code for one email address. At most one
// record exists per email; a reissue overwrites the prior one.
type OTPRecord struct {
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}
