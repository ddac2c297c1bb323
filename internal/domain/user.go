package domain

import "time"

// User is a registered account. Email is unique across accounts.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a server-side login session resolved from a bearer token.
type Session struct {
	Token     string
	UserEmail string
	ExpiresAt time.Time
	CreatedAt time.Time
}
