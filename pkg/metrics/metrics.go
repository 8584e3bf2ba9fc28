package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WeatherCacheRequests counts weather cache lookups by result (hit|miss).
	WeatherCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecogarden_weather_cache_requests_total",
			Help: "Total number of weather cache lookups",
		},
		[]string{"result"},
	)

	// WeatherProviderCalls counts provider calls by outcome (success|failure|malformed|circuit_open).
	WeatherProviderCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecogarden_weather_provider_calls_total",
			Help: "Total number of weather provider calls",
		},
		[]string{"status"},
	)

	// WeatherProviderDuration measures provider call latency.
	WeatherProviderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ecogarden_weather_provider_duration_seconds",
			Help:    "Weather provider call latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CacheWarmRuns counts cache warming runs by result (success|failure|skipped).
	CacheWarmRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecogarden_weather_cache_warm_runs_total",
			Help: "Total number of weather cache warming runs",
		},
		[]string{"result"},
	)
)

// Handler exposes the default registry
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
