package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOk    = "ok"
	ResultError = "error"
	ResultEmpty = "empty"
)

var (
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintmate_historical_cache_lookups_total",
		Help: "Historical data cache lookups by result",
	}, []string{"result"})

	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mintmate_historical_cache_entries",
		Help: "Entries currently held by the historical data cache",
	})

	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintmate_provider_requests_total",
		Help: "Market data provider calls by provider and result",
	}, []string{"provider", "result"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mintmate_provider_request_duration_seconds",
		Help:    "Market data provider call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
	}, []string{"provider"})

	SeriesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintmate_series_served_total",
		Help: "Historical series returned by the source that produced them",
	}, []string{"source"})

	LlmRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintmate_llm_requests_total",
		Help: "Advisor LLM calls by operation and result",
	}, []string{"operation", "result"})

	HttpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mintmate_http_requests_total",
		Help: "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})
)

func ObserveProvider(provider string, start time.Time, result string) {
	ProviderLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	ProviderRequests.WithLabelValues(provider, result).Inc()
}
