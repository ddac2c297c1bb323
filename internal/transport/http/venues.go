package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AnuragChougule/venuebook/internal/app"
	"github.com/AnuragChougule/venuebook/internal/domain"
)

// VenueDiscoverer is the minimal interface needed for venue discovery.
type VenueDiscoverer interface {
	DiscoverVenues(ctx context.Context, source string, filters app.DiscoveryFilters) ([]domain.Venue, error)
}

// VenueCatalog is the minimal interface needed for catalog endpoints.
type VenueCatalog interface {
	CreateVenue(ctx context.Context, in app.CreateVenueInput) (domain.Venue, error)
	GetVenue(ctx context.Context, id string) (domain.Venue, error)
}

// HandleDiscoverVenues returns an HTTP handler for listing venues ranked
// by road distance from the caller's area, with optional filters.
func HandleDiscoverVenues(svc VenueDiscoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := app.DiscoveryFilters{}
		if v := query.Get("eventType"); v != "" {
			filters.EventType = &v
		}
		for _, p := range []struct {
			name string
			dst  **int
		}{
			{"minPrice", &filters.MinPrice},
			{"maxPrice", &filters.MaxPrice},
			{"minCapacity", &filters.MinCapacity},
			{"maxCapacity", &filters.MaxCapacity},
		} {
			raw := query.Get(p.name)
			if raw == "" {
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidFilter, "invalid "+p.name)
				return
			}
			*p.dst = &n
		}

		venues, err := svc.DiscoverVenues(r.Context(), query.Get("source"), filters)
		if err != nil {
			switch err {
			case domain.ErrInvalidLocation:
				writeError(w, http.StatusBadRequest, codeInvalidLocation, err.Error())
			case domain.ErrInvalidFilter:
				writeError(w, http.StatusBadRequest, codeInvalidFilter, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := make([]venueResponse, 0, len(venues))
		for _, v := range venues {
			resp = append(resp, toVenueResponse(v))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleCreateVenue returns an HTTP handler for registering a venue.
func HandleCreateVenue(svc VenueCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVenueRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		venue, err := svc.CreateVenue(r.Context(), app.CreateVenueInput{
			Name:            req.Name,
			Area:            req.Area,
			Price:           req.Price,
			Capacity:        req.Capacity,
			SupportedEvents: req.SupportedEvents,
			Description:     req.Description,
			ContactPhone:    req.ContactPhone,
		})
		if err != nil {
			switch err {
			case domain.ErrVenueNameRequired:
				writeError(w, http.StatusBadRequest, codeVenueNameRequired, err.Error())
			case domain.ErrVenueAreaRequired:
				writeError(w, http.StatusBadRequest, codeVenueAreaRequired, err.Error())
			case domain.ErrInvalidLocation:
				writeError(w, http.StatusBadRequest, codeInvalidLocation, err.Error())
			case domain.ErrInvalidPrice:
				writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
			case domain.ErrInvalidCapacity:
				writeError(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toVenueResponse(venue))
	}
}

// HandleGetVenue returns an HTTP handler for fetching one venue.
func HandleGetVenue(svc VenueCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venue, err := svc.GetVenue(r.Context(), chi.URLParam(r, "venueID"))
		if err != nil {
			switch err {
			case domain.ErrVenueNotFound, domain.ErrInvalidID:
				writeError(w, http.StatusNotFound, codeVenueNotFound, domain.ErrVenueNotFound.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusOK, toVenueResponse(venue))
	}
}

type createVenueRequest struct {
	Name            string   `json:"name"`
	Area            string   `json:"area"`
	Price           int      `json:"price"`
	Capacity        int      `json:"capacity"`
	SupportedEvents []string `json:"supported_events"`
	Description     string   `json:"description"`
	ContactPhone    string   `json:"contact_phone"`
}

type venueResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Area            string    `json:"area"`
	Price           int       `json:"price"`
	Capacity        int       `json:"capacity"`
	SupportedEvents []string  `json:"supported_events"`
	Description     string    `json:"description"`
	ContactPhone    string    `json:"contact_phone"`
	CreatedAt       time.Time `json:"created_at"`
}

func toVenueResponse(v domain.Venue) venueResponse {
	events := v.SupportedEvents
	if events == nil {
		events = []string{}
	}
	return venueResponse{
		ID:              v.ID,
		Name:            v.Name,
		Area:            v.Area,
		Price:           v.Price,
		Capacity:        v.Capacity,
		SupportedEvents: events,
		Description:     v.Description,
		ContactPhone:    v.ContactPhone,
		CreatedAt:       v.CreatedAt,
	}
}
