package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics метрики Prometheus сервиса бронирований
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	BookingsUpdated     *prometheus.CounterVec
	BookingsDeleted     prometheus.Counter
}

// New создает и регистрирует метрики
// В production передаётся prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}),

		BookingsUpdated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_updated_total",
			Help:        "Total number of booking status updates by target status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		BookingsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_deleted_total",
			Help:        "Total number of deleted bookings",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingsUpdated,
		m.BookingsDeleted,
	)

	return m
}

// Методы безопасны для nil: при выключенных метриках вызовы ничего не делают

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncBookingCreated увеличивает счётчик созданных бронирований
func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// IncBookingUpdated увеличивает счётчик обновлений статуса
func (m *Metrics) IncBookingUpdated(status string) {
	if m == nil {
		return
	}
	m.BookingsUpdated.WithLabelValues(status).Inc()
}

// IncBookingDeleted увеличивает счётчик удалённых бронирований
func (m *Metrics) IncBookingDeleted() {
	if m == nil {
		return
	}
	m.BookingsDeleted.Inc()
}
