package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnuragChougule/venuebook/internal/domain"
)

type VenueRepository struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{pool: pool}
}

func (r *VenueRepository) CreateVenue(ctx context.Context, venue domain.Venue) error {
	const stmt = `
INSERT INTO venues (id, name, area, price, capacity, supported_events, description, contact_phone, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, stmt,
		venue.ID,
		venue.Name,
		venue.Area,
		venue.Price,
		venue.Capacity,
		venue.SupportedEvents,
		venue.Description,
		venue.ContactPhone,
		venue.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

// ListVenues returns the catalog in stable insertion order, which discovery
// relies on as its unranked baseline.
func (r *VenueRepository) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	const query = `
SELECT id, name, area, price, capacity, supported_events, description, contact_phone, created_at
FROM venues
ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Area, &v.Price, &v.Capacity,
			&v.SupportedEvents, &v.Description, &v.ContactPhone, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (r *VenueRepository) GetVenue(ctx context.Context, id string) (domain.Venue, error) {
	const query = `
SELECT id, name, area, price, capacity, supported_events, description, contact_phone, created_at
FROM venues
WHERE id = $1`

	var v domain.Venue
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Area, &v.Price, &v.Capacity,
		&v.SupportedEvents, &v.Description, &v.ContactPhone, &v.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Venue{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Venue{}, domain.ErrVenueNotFound
		}
		return domain.Venue{}, fmt.Errorf("get venue: %w", err)
	}
	return v, nil
}
