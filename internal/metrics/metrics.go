// Package metrics exposes Prometheus counters for portal events.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances can live in one
// process (tests build one per case).
type Metrics struct {
	Registry *prometheus.Registry

	logins          *prometheus.CounterVec
	wasteLogs       *prometheus.CounterVec
	fines           prometheus.Counter
	payments        *prometheus.CounterVec
	bookings        *prometheus.CounterVec
	assistantErrors *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecotrack_logins_total",
				Help: "Successful logins by portal.",
			},
			[]string{"portal"},
		),
		wasteLogs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecotrack_waste_logs_total",
				Help: "Accepted waste logs by waste type.",
			},
			[]string{"type"},
		),
		fines: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ecotrack_mixed_waste_fines_total",
				Help: "Fines applied for consecutive mixed-waste logs.",
			},
		),
		payments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecotrack_payments_total",
				Help: "Payments by resulting status.",
			},
			[]string{"status"},
		),
		bookings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecotrack_bookings_total",
				Help: "Special pickup bookings by waste type.",
			},
			[]string{"type"},
		),
		assistantErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecotrack_assistant_errors_total",
				Help: "Failed calls to the AI assistant by provider.",
			},
			[]string{"provider"},
		),
	}
}

func (m *Metrics) IncLogin(portal string) {
	m.logins.WithLabelValues(portal).Inc()
}

func (m *Metrics) IncWasteLog(wasteType string) {
	m.wasteLogs.WithLabelValues(wasteType).Inc()
}

func (m *Metrics) IncFine() {
	m.fines.Inc()
}

func (m *Metrics) IncPayment(status string) {
	m.payments.WithLabelValues(status).Inc()
}

func (m *Metrics) IncBooking(wasteType string) {
	m.bookings.WithLabelValues(wasteType).Inc()
}

func (m *Metrics) IncAssistantError(provider string) {
	m.assistantErrors.WithLabelValues(provider).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
