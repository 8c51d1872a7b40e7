package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках можно передавать nil
type Metrics struct {
	registry    *prometheus.Registry
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbQueryErrors     *prometheus.CounterVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	checkInsTotal  *prometheus.CounterVec
	checkOutsTotal *prometheus.CounterVec
	settledRevenue prometheus.Counter
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}
	factory := promauto.With(reg)

	return &Metrics{
		registry:    reg,
		serviceName: serviceName,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: constLabels,
		}),
		dbInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: constLabels,
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		checkInsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_check_ins_total",
			Help:        "Completed check-ins by booking type",
			ConstLabels: constLabels,
		}, []string{"booking_type"}),
		checkOutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_check_outs_total",
			Help:        "Completed check-outs by booking type",
			ConstLabels: constLabels,
		}, []string{"booking_type"}),
		settledRevenue: factory.NewCounter(prometheus.CounterOpts{
			Name:        "hotel_settled_revenue_total",
			Help:        "Sum of settled bills in currency units",
			ConstLabels: constLabels,
		}),
	}
}

// Handler HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

func (m *Metrics) IncCheckIn(bookingType string) {
	if m == nil {
		return
	}
	m.checkInsTotal.WithLabelValues(bookingType).Inc()
}

func (m *Metrics) IncCheckOut(bookingType string, amount int64) {
	if m == nil {
		return
	}
	m.checkOutsTotal.WithLabelValues(bookingType).Inc()
	m.settledRevenue.Add(float64(amount))
}
