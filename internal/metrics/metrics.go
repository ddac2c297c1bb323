// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the service and transport layers use to
// record application events.
type Recorder interface {
	RecordBooking()
	RecordBookingConflict()
	RecordCodeIssued()
	RecordCodeDeliveryFailure()
	RecordSignup()
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	bookings          prometheus.Counter
	bookingConflicts  prometheus.Counter
	codesIssued       prometheus.Counter
	codeDeliveryFails prometheus.Counter
	signups           prometheus.Counter
	httpDuration      *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "venuebook_bookings_total",
			Help: "Total number of bookings created.",
		}),
		bookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "venuebook_booking_conflicts_total",
			Help: "Total number of booking attempts rejected because the date was taken.",
		}),
		codesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "venuebook_codes_issued_total",
			Help: "Total number of verification codes issued.",
		}),
		codeDeliveryFails: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "venuebook_code_delivery_failures_total",
			Help: "Total number of verification code emails that failed to send.",
		}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "venuebook_signups_total",
			Help: "Total number of completed signups.",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "venuebook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
	}

	reg.MustRegister(
		c.bookings,
		c.bookingConflicts,
		c.codesIssued,
		c.codeDeliveryFails,
		c.signups,
		c.httpDuration,
	)

	return c
}

func (c *Collector) RecordBooking() { c.bookings.Inc() }
func (c *Collector) RecordBookingConflict() { c.bookingConflicts.Inc() }
func (c *Collector) RecordCodeIssued() { c.codesIssued.Inc() }
func (c *Collector) RecordCodeDeliveryFailure() { c.codeDeliveryFails.Inc() }
func (c *Collector) RecordSignup() { c.signups.Inc() }

func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpDuration.WithLabelValues(method, route, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop is a Recorder that discards everything. Useful in tests.
type Noop struct{}

func (Noop) RecordBooking() {}
func (Noop) RecordBookingConflict() {}
func (Noop) RecordCodeIssued() {}
func (Noop) RecordCodeDeliveryFailure() {}
func (Noop) RecordSignup() {}
func (Noop) RecordHTTPRequest(method, route string, statusCode int, d time.Duration) {}

var _ Recorder = (*Collector)(nil)
var _ Recorder = Noop{}
