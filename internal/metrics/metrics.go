package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zaban", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zaban", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zaban", Name: "bookings_created_total", Help: "Slots successfully claimed",
	})
	BookingConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zaban", Name: "booking_conflicts_total", Help: "Claims lost to an already booked slot",
	})
	PaymentTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zaban", Name: "payment_transitions_total", Help: "Applied payment status changes",
	}, []string{"status"})
	Notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zaban", Name: "notifications_total", Help: "Operator notifications by result",
	}, []string{"result"})
	AdminsPromoted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zaban", Name: "admins_promoted_total", Help: "Users elevated to admin",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPDuration,
		BookingsCreated,
		BookingConflicts,
		PaymentTransitions,
		Notifications,
		AdminsPromoted,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
