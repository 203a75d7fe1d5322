package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр использует собственный registry, поэтому New можно вызывать многократно
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingOutcomes *prometheus.CounterVec
	ContactOutcomes *prometheus.CounterVec
	AnalyticsEvents *prometheus.CounterVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec
}

// New создает и регистрирует метрики
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		serviceName: serviceName,
		registry:    registry,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.01, .05, .1, .25, .5, .75, 1, 2.5, 5},
			},
			[]string{"service", "method", "path"},
		),
		BookingOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_outcomes_total",
				Help: "Class booking results by outcome",
			},
			[]string{"service", "outcome"},
		),
		ContactOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_outcomes_total",
				Help: "Contact form results by outcome",
			},
			[]string{"service", "outcome"},
		),
		AnalyticsEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_events_total",
				Help: "Tracked analytics events",
			},
			[]string{"service", "event"},
		),
		DBQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		DBConnections: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state",
			},
			[]string{"service", "state"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingOutcomes,
		m.ContactOutcomes,
		m.AnalyticsEvents,
		m.DBQueryDuration,
		m.DBConnections,
	)

	return m
}

// Handler http.Handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordBookingOutcome(outcome string) {
	m.BookingOutcomes.WithLabelValues(m.serviceName, outcome).Inc()
}

func (m *Metrics) RecordContactOutcome(outcome string) {
	m.ContactOutcomes.WithLabelValues(m.serviceName, outcome).Inc()
}

func (m *Metrics) RecordAnalyticsEvent(event string) {
	m.AnalyticsEvents.WithLabelValues(m.serviceName, event).Inc()
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

func (m *Metrics) SetDBConnections(state string, value float64) {
	m.DBConnections.WithLabelValues(m.serviceName, state).Set(value)
}
