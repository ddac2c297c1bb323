package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	metricspkg "github.com/AnuragChougule/venuebook/internal/metrics"
)

// AuthService combines everything the session and profile endpoints
// need from one implementation.
type AuthService interface {
	Authenticator
	LoginService
	ProfileService
}

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Discovery VenueDiscoverer
	Catalog   VenueCatalog
	Bookings  BookingService
	Signup    SignupService
	Auth      AuthService
	Orders    OrderCreator

	Logger      *slog.Logger
	Recorder    metricspkg.Recorder
	Gatherer    prometheus.Gatherer
	CodeLimiter *RateLimiter
	CORSOrigins []string
}

// NewRouter assembles the HTTP API.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(deps.Logger, deps.Recorder))
	r.Use(CORS(deps.CORSOrigins))

	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HealthHandler)
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metricspkg.Handler(deps.Gatherer))
	}

	r.Route("/auth", func(r chi.Router) {
		code := r
		if deps.CodeLimiter != nil {
			code = r.With(deps.CodeLimiter.Middleware())
		}
		code.Post("/code", HandleRequestCode(deps.Signup, deps.Recorder))
		r.Post("/signup", HandleSignup(deps.Signup, deps.Recorder))
		r.Post("/login", HandleLogin(deps.Auth))
		r.Post("/logout", HandleLogout(deps.Auth))
	})

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", HandleDiscoverVenues(deps.Discovery))
		r.Post("/", HandleCreateVenue(deps.Catalog))
		r.Route("/{venueID}", func(r chi.Router) {
			r.Get("/", HandleGetVenue(deps.Catalog))
			r.Get("/dates", HandleListBookedDates(deps.Bookings))
			r.With(SessionAuth(deps.Auth)).Post("/bookings", HandleBookDate(deps.Bookings, deps.Recorder))
		})
	})

	r.Route("/me", func(r chi.Router) {
		r.Use(SessionAuth(deps.Auth))
		r.Get("/", HandleGetProfile(deps.Auth))
		r.Patch("/", HandleUpdateProfile(deps.Auth))
		r.Get("/bookings", HandleMyBookings(deps.Bookings))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(SessionAuth(deps.Auth))
		r.Get("/bookings", HandleAllBookings(deps.Bookings))
	})

	r.With(SessionAuth(deps.Auth)).Post("/orders", HandleCreateOrder(deps.Orders))

	return r
}
