package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Внешние API (Google Calendar / Sheets)
	UpstreamRequestDuration *prometheus.HistogramVec
	UpstreamErrorsTotal     *prometheus.CounterVec

	// Кэш
	CacheRequestsTotal *prometheus.CounterVec

	// Доменные метрики
	SlotsGenerated *prometheus.HistogramVec
}

// New регистрирует метрики в указанном registerer
// В production передаётся prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		UpstreamRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Duration of calls to external APIs",
			ConstLabels: constLabels,
			Buckets:     []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"upstream", "operation"}),

		UpstreamErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_errors_total",
			Help:        "Number of failed calls to external APIs",
			ConstLabels: constLabels,
		}, []string{"upstream", "operation"}),

		CacheRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_requests_total",
			Help:        "Cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),

		SlotsGenerated: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "slots_generated",
			Help:        "Number of free slots returned per request",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 20, 30, 40, 60},
		}, []string{"operation"}),
	}
}

// ObserveUpstream записывает длительность вызова внешнего API
// Безопасен для nil-ресивера (метрики выключены)
func (m *Metrics) ObserveUpstream(upstream, operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.UpstreamRequestDuration.WithLabelValues(upstream, operation).Observe(seconds)
	if err != nil {
		m.UpstreamErrorsTotal.WithLabelValues(upstream, operation).Inc()
	}
}

// CacheHit фиксирует попадание в кэш
func (m *Metrics) CacheHit(kind string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(kind, "hit").Inc()
}

// CacheMiss фиксирует промах кэша
func (m *Metrics) CacheMiss(kind string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(kind, "miss").Inc()
}

// ObserveSlots записывает количество сгенерированных слотов
func (m *Metrics) ObserveSlots(operation string, count int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.WithLabelValues(operation).Observe(float64(count))
}
