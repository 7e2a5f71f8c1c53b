package metrics

import (
	"strings"
	"time"

	"seat-reservation/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "seat_reservation"

const (
	ReaperResultOK      = "ok"
	ReaperResultError   = "error"
	ReaperResultSkipped = "skipped"
)

type Metrics struct {
	bookingOperations *prometheus.CounterVec
	bookingDuration   *prometheus.HistogramVec

	reaperRuns          *prometheus.CounterVec
	reaperExpired       prometheus.Counter
	reaperSeatsReleased prometheus.Counter
	reaperDuration      prometheus.Histogram
}

// New registers every collector on reg. Tests pass a fresh
// prometheus.NewRegistry() to stay isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		bookingOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_operations_total",
				Help:      "Booking operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		bookingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "booking_operation_duration_seconds",
				Help:      "Latency of booking operations including lock waits",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
			},
			[]string{"operation"},
		),
		reaperRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reaper_runs_total",
				Help:      "Expiry reaper runs by result",
			},
			[]string{"result"},
		),
		reaperExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reaper_bookings_expired_total",
				Help:      "Pending bookings cancelled by the reaper",
			},
		),
		reaperSeatsReleased: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reaper_seats_released_total",
				Help:      "Show seats returned to available by the reaper",
			},
		),
		reaperDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "reaper_run_duration_seconds",
				Help:      "Duration of reaper runs",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// ObserveOperation labels the outcome with the lower-cased error kind, or
// "ok" on success.
func (m *Metrics) ObserveOperation(operation string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = strings.ToLower(booking.KindOf(err).String())
	}
	m.bookingOperations.WithLabelValues(operation, outcome).Inc()
	m.bookingDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveReaperRun(result string, expired, released int64, elapsed time.Duration) {
	m.reaperRuns.WithLabelValues(result).Inc()
	if result == ReaperResultSkipped {
		return
	}
	m.reaperExpired.Add(float64(expired))
	m.reaperSeatsReleased.Add(float64(released))
	m.reaperDuration.Observe(elapsed.Seconds())
}
