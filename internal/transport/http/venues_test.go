package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/AnuragChougule/venuebook/internal/app"
	"github.com/AnuragChougule/venuebook/internal/domain"
)

type fakeDiscovery struct {
	venues     []domain.Venue
	err        error
	gotSource  string
	gotFilters app.DiscoveryFilters
}

func (f *fakeDiscovery) DiscoverVenues(ctx context.Context, source string, filters app.DiscoveryFilters) ([]domain.Venue, error) {
	f.gotSource = source
	f.gotFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	return f.venues, nil
}

type fakeCatalogService struct {
	venue     domain.Venue
	createErr error
	getErr    error
}

func (f *fakeCatalogService) CreateVenue(ctx context.Context, in app.CreateVenueInput) (domain.Venue, error) {
	if f.createErr != nil {
		return domain.Venue{}, f.createErr
	}
	return f.venue, nil
}

func (f *fakeCatalogService) GetVenue(ctx context.Context, id string) (domain.Venue, error) {
	if f.getErr != nil {
		return domain.Venue{}, f.getErr
	}
	return f.venue, nil
}

func TestHandleDiscoverVenues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			target:         "/venues?source=Tilakwadi",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"name":"Hall A"`,
		},
		{
			name:           "unknown source",
			target:         "/venues?source=Atlantis",
			serviceErr:     domain.ErrInvalidLocation,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_location",
		},
		{
			name:           "malformed price",
			target:         "/venues?minPrice=abc",
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_filter",
		},
		{
			name:           "contradictory bounds",
			target:         "/venues?minPrice=100&maxPrice=50",
			serviceErr:     domain.ErrInvalidFilter,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_filter",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeDiscovery{
				venues: []domain.Venue{{ID: "venue-1", Name: "Hall A", Area: "Tilakwadi"}},
				err:    tc.serviceErr,
			}
			rec := httptest.NewRecorder()
			HandleDiscoverVenues(svc)(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.expectedStatus, rec.Body.String())
			}
			if tc.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tc.expectedSubstr) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tc.expectedSubstr)
			}
		})
	}
}

func TestHandleDiscoverVenues_ParsesFilters(t *testing.T) {
	t.Parallel()

	svc := &fakeDiscovery{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/venues?source=Camp&eventType=Marriage&minPrice=100&maxPrice=900&minCapacity=50&maxCapacity=400", nil)
	HandleDiscoverVenues(svc)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotSource != "Camp" {
		t.Errorf("source = %q, want Camp", svc.gotSource)
	}
	f := svc.gotFilters
	if f.EventType == nil || *f.EventType != "Marriage" {
		t.Errorf("eventType filter not forwarded: %+v", f)
	}
	if f.MinPrice == nil || *f.MinPrice != 100 || f.MaxPrice == nil || *f.MaxPrice != 900 {
		t.Errorf("price filters not forwarded: %+v", f)
	}
	if f.MinCapacity == nil || *f.MinCapacity != 50 || f.MaxCapacity == nil || *f.MaxCapacity != 400 {
		t.Errorf("capacity filters not forwarded: %+v", f)
	}
}

func TestHandleCreateVenue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"name":"Hall A","area":"Tilakwadi","price":5000,"capacity":200}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"name":"Hall A"`,
		},
		{
			name:           "invalid json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_request_body",
		},
		{
			name:           "missing name",
			body:           `{"area":"Tilakwadi","price":5000,"capacity":200}`,
			serviceErr:     domain.ErrVenueNameRequired,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "venue_name_required",
		},
		{
			name:           "unknown area",
			body:           `{"name":"Hall A","area":"Atlantis","price":5000,"capacity":200}`,
			serviceErr:     domain.ErrInvalidLocation,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_location",
		},
		{
			name:           "bad price",
			body:           `{"name":"Hall A","area":"Tilakwadi","price":0,"capacity":200}`,
			serviceErr:     domain.ErrInvalidPrice,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "invalid_price",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeCatalogService{
				venue:     domain.Venue{ID: "venue-1", Name: "Hall A", Area: "Tilakwadi", Price: 5000, Capacity: 200},
				createErr: tc.serviceErr,
			}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/venues", strings.NewReader(tc.body))
			HandleCreateVenue(svc)(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.expectedStatus, rec.Body.String())
			}
			if tc.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tc.expectedSubstr) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tc.expectedSubstr)
			}
		})
	}
}

func TestHandleGetVenue(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		svc := &fakeCatalogService{venue: domain.Venue{ID: "venue-1", Name: "Hall A"}}
		router := chi.NewRouter()
		router.Get("/venues/{venueID}", HandleGetVenue(svc))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/venue-1", nil))
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":"venue-1"`) {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc := &fakeCatalogService{getErr: domain.ErrVenueNotFound}
		router := chi.NewRouter()
		router.Get("/venues/{venueID}", HandleGetVenue(svc))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/unknown", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
