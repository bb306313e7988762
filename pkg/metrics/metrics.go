package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
// HTTP-метрики заполняются middleware, DB-метрики - обёрткой dbmetrics
type Metrics struct {
	// HTTPRequestsTotal счетчик HTTP запросов (service, method, path, status)
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма длительности HTTP запросов (service, method, path)
	HTTPRequestDuration *prometheus.HistogramVec

	// DBQueriesTotal счетчик SQL запросов (service, operation, status)
	DBQueriesTotal *prometheus.CounterVec

	// DBQueryDuration гистограмма длительности SQL запросов (service, operation)
	DBQueryDuration *prometheus.HistogramVec

	// DBConnections текущее состояние connection pool (service, state)
	DBConnections *prometheus.GaugeVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	_ = serviceName // имя сервиса передается в лейблах при записи

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Current database connection pool state",
		}, []string{"service", "state"}),
	}
}
