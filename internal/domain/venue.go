package domain

import "time"

// Venue is a bookable place tied to one area of the location graph.
type Venue struct {
	ID              string
	Name            string
	Area            string
	Price           int
	Capacity        int
	SupportedEvents []string
	Description     string
	ContactPhone    string
	CreatedAt       time.Time
}

// SupportsEvent reports whether the venue accepts the given event type.
func (v Venue) SupportsEvent(eventType string) bool {
	for _, e := range v.SupportedEvents {
		if e == eventType {
			return true
		}
	}
	return false
}
