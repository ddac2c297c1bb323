package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/domain"
)

// BookingRepository persists the per-venue booking ledger. CreateBooking
// must be a single conditional insert: it returns ErrDateConflict when the
// (venue, date) pair is already held and ErrVenueNotFound when the venue
// does not exist, with no separate lookup step in between.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking domain.Booking) error
	ListBookedDates(ctx context.Context, venueID string) ([]time.Time, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
}

type BookingService struct {
	repo  BookingRepository
	clock clock.Clock
}

func NewBookingService(repo BookingRepository, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:  repo,
		clock: clk,
	}
}

type BookDateInput struct {
	VenueID        string
	Date           time.Time
	Email          string
	FullName       string
	PhoneNumber    string
	EventType      string
	GuestCount     int
	PaymentOrderID string
}

func (in BookDateInput) validate() error {
	if in.VenueID == "" {
		return domain.ErrInvalidID
	}
	if in.Date.IsZero() {
		return domain.ErrDateRequired
	}
	if in.Email == "" {
		return domain.ErrEmailRequired
	}
	if in.FullName == "" {
		return domain.ErrFullNameRequired
	}
	if in.EventType == "" {
		return domain.ErrEventTypeRequired
	}
	return nil
}

// BookDate reserves in.Date at the venue. The date is compared at day
// granularity; a second booking for the same venue and day fails with
// ErrDateConflict and leaves the ledger unchanged.
func (s *BookingService) BookDate(ctx context.Context, in BookDateInput) (domain.Booking, error) {
	if err := in.validate(); err != nil {
		return domain.Booking{}, err
	}

	now := s.clock.Now()
	eventDate := domain.NormalizeDate(in.Date)
	if eventDate.Before(domain.NormalizeDate(now)) {
		return domain.Booking{}, domain.ErrDateInPast
	}

	booking := domain.Booking{
		ID:             uuid.NewString(),
		VenueID:        in.VenueID,
		EventDate:      eventDate,
		Email:          in.Email,
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		EventType:      in.EventType,
		GuestCount:     in.GuestCount,
		PaymentOrderID: in.PaymentOrderID,
		CreatedAt:      now,
	}

	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return domain.Booking{}, err
	}
	return booking, nil
}

// ListBookedDates returns every date held at the venue in ascending order.
// A venue with no bookings yields an empty slice, never an error.
func (s *BookingService) ListBookedDates(ctx context.Context, venueID string) ([]time.Time, error) {
	if venueID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListBookedDates(ctx, venueID)
}

// ListBookingsByEmail returns the caller's own bookings. requester is the
// authenticated identity; asking for someone else's email is refused.
func (s *BookingService) ListBookingsByEmail(ctx context.Context, requester, email string) ([]domain.Booking, error) {
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if requester != email {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListBookingsByEmail(ctx, email)
}

// ListAllBookings returns every booking across venues, newest first.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.ListAllBookings(ctx)
}
