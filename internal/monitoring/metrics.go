package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created, per category tier",
		},
		[]string{"category"},
	)

	bookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Bookings cancelled",
		},
	)

	bookingsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_failed_total",
			Help: "Failed booking attempts, per reason",
		},
		[]string{"reason"},
	)

	seatExhaustion = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seat_range_exhausted_total",
			Help: "Allocation attempts that found a category fully booked",
		},
		[]string{"category"},
	)
)

func BookingCreated(category string) {
	bookingsCreated.WithLabelValues(category).Inc()
}

func BookingCancelled() {
	bookingsCancelled.Inc()
}

func BookingFailed(reason string) {
	bookingsFailed.WithLabelValues(reason).Inc()
}

func SeatRangeExhausted(category string) {
	seatExhaustion.WithLabelValues(category).Inc()
}

// Handler exposes the default prometheus registry, mounted at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
