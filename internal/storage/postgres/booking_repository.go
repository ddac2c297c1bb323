package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// CreateBooking inserts the booking in one statement. The unique constraint
// on (venue_id, event_date) is the exclusivity check: concurrent attempts
// for the same venue and day resolve to one insert and one ErrDateConflict,
// with no read-then-write window.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	const stmt = `
INSERT INTO bookings (id, venue_id, event_date, email, full_name, phone_number, event_type, guest_count, payment_order_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, stmt,
		booking.ID,
		booking.VenueID,
		booking.EventDate,
		booking.Email,
		booking.FullName,
		booking.PhoneNumber,
		booking.EventType,
		booking.GuestCount,
		booking.PaymentOrderID,
		booking.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDateConflict
		}
		if isForeignKeyViolation(err) {
			return domain.ErrVenueNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) ListBookedDates(ctx context.Context, venueID string) ([]time.Time, error) {
	const query = `SELECT event_date FROM bookings WHERE venue_id = $1 ORDER BY event_date ASC`

	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list booked dates: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan booked date: %w", err)
		}
		dates = append(dates, domain.NormalizeDate(d))
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, fmt.Errorf("list booked dates: %w", err)
	}
	return dates, nil
}

func (r *BookingRepository) ListBookingsByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	const query = `
SELECT id, venue_id, event_date, email, full_name, phone_number, event_type, guest_count, payment_order_id, created_at
FROM bookings
WHERE email = $1
ORDER BY event_date ASC`

	return r.queryBookings(ctx, query, email)
}

func (r *BookingRepository) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	const query = `
SELECT id, venue_id, event_date, email, full_name, phone_number, event_type, guest_count, payment_order_id, created_at
FROM bookings
ORDER BY created_at DESC`

	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.VenueID, &b.EventDate, &b.Email, &b.FullName,
			&b.PhoneNumber, &b.EventType, &b.GuestCount, &b.PaymentOrderID, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.EventDate = domain.NormalizeDate(b.EventDate)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	return bookings, nil
}
