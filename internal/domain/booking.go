package domain

import "time"

// Booking holds one reserved date at one venue. A venue carries at most one
// booking per calendar day; the (venue_id, event_date) pair is unique.
type Booking struct {
	ID             string
	VenueID        string
	EventDate      time.Time
	Email          string
	FullName       string
	PhoneNumber    string
	EventType      string
	GuestCount     int
	PaymentOrderID string
	CreatedAt      time.Time
}

// NormalizeDate truncates t to day granularity in UTC. Booking exclusivity
// compares dates, never timestamps.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
