package app

import (
	"context"
	"sort"

	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/geo"
)

// VenueLister is the minimal catalog access discovery needs.
type VenueLister interface {
	ListVenues(ctx context.Context) ([]domain.Venue, error)
}

type DiscoveryService struct {
	catalog VenueLister
	graph   geo.Graph
}

func NewDiscoveryService(catalog VenueLister, graph geo.Graph) *DiscoveryService {
	return &DiscoveryService{
		catalog: catalog,
		graph:   graph,
	}
}

// DiscoveryFilters are optional constraints on the venue catalog. A nil
// field imposes no restriction; numeric bounds are inclusive.
type DiscoveryFilters struct {
	EventType   *string
	MinPrice    *int
	MaxPrice    *int
	MinCapacity *int
	MaxCapacity *int
}

func (f DiscoveryFilters) validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return domain.ErrInvalidFilter
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return domain.ErrInvalidFilter
	}
	if f.MinCapacity != nil && *f.MinCapacity < 0 {
		return domain.ErrInvalidFilter
	}
	if f.MaxCapacity != nil && *f.MaxCapacity < 0 {
		return domain.ErrInvalidFilter
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return domain.ErrInvalidFilter
	}
	if f.MinCapacity != nil && f.MaxCapacity != nil && *f.MinCapacity > *f.MaxCapacity {
		return domain.ErrInvalidFilter
	}
	return nil
}

func (f DiscoveryFilters) matches(v domain.Venue) bool {
	if f.EventType != nil && !v.SupportsEvent(*f.EventType) {
		return false
	}
	if f.MinPrice != nil && v.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && v.Price > *f.MaxPrice {
		return false
	}
	if f.MinCapacity != nil && v.Capacity < *f.MinCapacity {
		return false
	}
	if f.MaxCapacity != nil && v.Capacity > *f.MaxCapacity {
		return false
	}
	return true
}

// DiscoverVenues returns catalog venues matching every supplied filter,
// ranked ascending by travel distance from source. An empty source skips
// ranking and returns the filtered set in catalog order; an unknown source
// is rejected with ErrInvalidLocation before any ranking work.
func (s *DiscoveryService) DiscoverVenues(ctx context.Context, source string, filters DiscoveryFilters) ([]domain.Venue, error) {
	if err := filters.validate(); err != nil {
		return nil, err
	}
	if source != "" && !s.graph.Contains(source) {
		return nil, domain.ErrInvalidLocation
	}

	venues, err := s.catalog.ListVenues(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if filters.matches(v) {
			filtered = append(filtered, v)
		}
	}

	if source == "" {
		return filtered, nil
	}

	dist, err := s.graph.ShortestFrom(source)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps catalog order among venues at equal distance.
	// Areas absent from the distance table are unreachable and sort last.
	sort.SliceStable(filtered, func(i, j int) bool {
		di, iReachable := dist[filtered[i].Area]
		dj, jReachable := dist[filtered[j].Area]
		if iReachable != jReachable {
			return iReachable
		}
		if !iReachable {
			return false
		}
		return di < dj
	})

	return filtered, nil
}
