package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnuragChougule/venuebook/internal/clock"
	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/geo"
)

// VenueRepository persists the venue catalog.
type VenueRepository interface {
	CreateVenue(ctx context.Context, venue domain.Venue) error
	ListVenues(ctx context.Context) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id string) (domain.Venue, error)
}

// CatalogService manages the venue catalog. Venues are created and updated
// here, never by the booking or discovery paths.
type CatalogService struct {
	repo  VenueRepository
	graph geo.Graph
	clock clock.Clock
}

func NewCatalogService(repo VenueRepository, graph geo.Graph, clk clock.Clock) *CatalogService {
	return &CatalogService{
		repo:  repo,
		graph: graph,
		clock: clk,
	}
}

type CreateVenueInput struct {
	Name            string
	Area            string
	Price           int
	Capacity        int
	SupportedEvents []string
	Description     string
	ContactPhone    string
}

func (s *CatalogService) CreateVenue(ctx context.Context, in CreateVenueInput) (domain.Venue, error) {
	if in.Name == "" {
		return domain.Venue{}, domain.ErrVenueNameRequired
	}
	if in.Area == "" {
		return domain.Venue{}, domain.ErrVenueAreaRequired
	}
	if !s.graph.Contains(in.Area) {
		return domain.Venue{}, domain.ErrInvalidLocation
	}
	if in.Price <= 0 {
		return domain.Venue{}, domain.ErrInvalidPrice
	}
	if in.Capacity <= 0 {
		return domain.Venue{}, domain.ErrInvalidCapacity
	}

	venue := domain.Venue{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Area:            in.Area,
		Price:           in.Price,
		Capacity:        in.Capacity,
		SupportedEvents: in.SupportedEvents,
		Description:     in.Description,
		ContactPhone:    in.ContactPhone,
		CreatedAt:       s.clock.Now(),
	}
	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return domain.Venue{}, err
	}
	return venue, nil
}

func (s *CatalogService) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.repo.ListVenues(ctx)
}

func (s *CatalogService) GetVenue(ctx context.Context, id string) (domain.Venue, error) {
	if id == "" {
		return domain.Venue{}, domain.ErrInvalidID
	}
	return s.repo.GetVenue(ctx, id)
}
