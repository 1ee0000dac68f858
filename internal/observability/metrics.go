// Package observability holds the Prometheus collectors shared by the API and
// the booking consumer.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	daysGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "itinerary",
		Subsystem: "planner",
		Name:      "days_generated_total",
		Help:      "Number of day plans generated, by vacation style.",
	}, []string{"style"})

	mealsAttached = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "itinerary",
		Subsystem: "meals",
		Name:      "attached_total",
		Help:      "Number of meals attached to trip days, by meal type and match kind.",
	}, []string{"meal_type", "match"})

	bookingsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "itinerary",
		Subsystem: "meals",
		Name:      "bookings_skipped_total",
		Help:      "Bookings ignored because they are not restaurant reservations.",
	}, []string{"booking_type"})

	mealsDetached = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "itinerary",
		Subsystem: "meals",
		Name:      "detached_total",
		Help:      "Number of booking deletions that removed at least one meal.",
	})
)

func init() {
	prometheus.MustRegister(daysGenerated, mealsAttached, bookingsSkipped, mealsDetached)
}

// RecordDaysGenerated counts n freshly planned days for a style.
func RecordDaysGenerated(style string, n int) {
	if n <= 0 {
		return
	}
	daysGenerated.WithLabelValues(style).Add(float64(n))
}

// RecordMealAttached counts one attached meal. exact is false when the meal
// landed on the nearest day rather than its own date.
func RecordMealAttached(mealType string, exact bool) {
	match := "nearest"
	if exact {
		match = "exact"
	}
	mealsAttached.WithLabelValues(mealType, match).Inc()
}

// RecordBookingSkipped counts a booking that was not converted.
func RecordBookingSkipped(bookingType string) {
	if bookingType == "" {
		bookingType = "unknown"
	}
	bookingsSkipped.WithLabelValues(bookingType).Inc()
}

// RecordMealsDetached counts a booking deletion that removed meals.
func RecordMealsDetached() {
	mealsDetached.Inc()
}

var httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "itinerary",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method, route pattern and status code.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

func init() {
	prometheus.MustRegister(httpRequestDuration)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}
