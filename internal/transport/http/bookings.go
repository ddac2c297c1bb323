package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AnuragChougule/venuebook/internal/app"
	"github.com/AnuragChougule/venuebook/internal/domain"
	"github.com/AnuragChougule/venuebook/internal/metrics"
)

const dateLayout = "2006-01-02"

// BookingService is the minimal interface needed for booking endpoints.
type BookingService interface {
	BookDate(ctx context.Context, in app.BookDateInput) (domain.Booking, error)
	ListBookedDates(ctx context.Context, venueID string) ([]time.Time, error)
	ListBookingsByEmail(ctx context.Context, requester, email string) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
}

// HandleBookDate returns an HTTP handler for booking a venue date. The
// booking is recorded under the signed-in user's email.
func HandleBookDate(svc BookingService, recorder metrics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := emailFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		var req bookDateRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		var date time.Time
		if req.Date != "" {
			parsed, err := time.Parse(dateLayout, req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidDate, "invalid date, want YYYY-MM-DD")
				return
			}
			date = parsed
		}

		booking, err := svc.BookDate(r.Context(), app.BookDateInput{
			VenueID:        chi.URLParam(r, "venueID"),
			Date:           date,
			Email:          email,
			FullName:       req.FullName,
			PhoneNumber:    req.PhoneNumber,
			EventType:      req.EventType,
			GuestCount:     req.GuestCount,
			PaymentOrderID: req.PaymentOrderID,
		})
		if err != nil {
			switch err {
			case domain.ErrDateConflict:
				recorder.RecordBookingConflict()
				writeError(w, http.StatusConflict, codeDateConflict, err.Error())
			case domain.ErrDateInPast:
				writeError(w, http.StatusBadRequest, codeDateInPast, err.Error())
			case domain.ErrDateRequired:
				writeError(w, http.StatusBadRequest, codeDateRequired, err.Error())
			case domain.ErrFullNameRequired:
				writeError(w, http.StatusBadRequest, codeFullNameRequired, err.Error())
			case domain.ErrEventTypeRequired:
				writeError(w, http.StatusBadRequest, codeEventTypeRequired, err.Error())
			case domain.ErrVenueNotFound, domain.ErrInvalidID:
				writeError(w, http.StatusNotFound, codeVenueNotFound, domain.ErrVenueNotFound.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		recorder.RecordBooking()
		writeJSON(w, http.StatusCreated, toBookingResponse(booking))
	}
}

// HandleListBookedDates returns an HTTP handler for listing the taken
// dates of a venue.
func HandleListBookedDates(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := svc.ListBookedDates(r.Context(), chi.URLParam(r, "venueID"))
		if err != nil {
			switch err {
			case domain.ErrVenueNotFound, domain.ErrInvalidID:
				writeError(w, http.StatusNotFound, codeVenueNotFound, domain.ErrVenueNotFound.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := bookedDatesResponse{Dates: make([]string, 0, len(dates))}
		for _, d := range dates {
			resp.Dates = append(resp.Dates, d.Format(dateLayout))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleMyBookings returns an HTTP handler for the signed-in user's
// booking history.
func HandleMyBookings(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := emailFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		bookings, err := svc.ListBookingsByEmail(r.Context(), email, email)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]bookingResponse, 0, len(bookings))
		for _, b := range bookings {
			resp = append(resp, toBookingResponse(b))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleAllBookings returns an HTTP handler listing every booking.
func HandleAllBookings(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := svc.ListAllBookings(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]bookingResponse, 0, len(bookings))
		for _, b := range bookings {
			resp = append(resp, toBookingResponse(b))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type bookDateRequest struct {
	Date           string `json:"date"`
	FullName       string `json:"full_name"`
	PhoneNumber    string `json:"phone_number"`
	EventType      string `json:"event_type"`
	GuestCount     int    `json:"guest_count"`
	PaymentOrderID string `json:"payment_order_id"`
}

type bookedDatesResponse struct {
	Dates []string `json:"dates"`
}

type bookingResponse struct {
	ID             string    `json:"id"`
	VenueID        string    `json:"venue_id"`
	EventDate      string    `json:"event_date"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	PhoneNumber    string    `json:"phone_number"`
	EventType      string    `json:"event_type"`
	GuestCount     int       `json:"guest_count"`
	PaymentOrderID string    `json:"payment_order_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		VenueID:        b.VenueID,
		EventDate:      b.EventDate.Format(dateLayout),
		Email:          b.Email,
		FullName:       b.FullName,
		PhoneNumber:    b.PhoneNumber,
		EventType:      b.EventType,
		GuestCount:     b.GuestCount,
		PaymentOrderID: b.PaymentOrderID,
		CreatedAt:      b.CreatedAt,
	}
}
