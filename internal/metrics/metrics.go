package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, route, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Optimizations counts optimize calls by outcome kind ("ok" or an error kind)
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travelmitr_optimizations_total", Help: "Route optimizations by outcome."},
		[]string{"outcome"},
	)
	// OptionsRanked observes how many transport options each successful optimization scored
	OptionsRanked = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "travelmitr_options_ranked", Help: "Transport options ranked per optimization.", Buckets: []float64{1, 2, 3, 4, 5, 8, 13}},
	)
	// RecommendedModes counts the winning mode of each optimization
	RecommendedModes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travelmitr_recommended_mode_total", Help: "Recommended transport mode per optimization."},
		[]string{"mode"},
	)
	// GeoRequests counts upstream geocoding/routing calls by endpoint and status
	GeoRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travelmitr_geo_requests_total", Help: "Upstream geo requests by endpoint and status."},
		[]string{"endpoint", "status"},
	)
	// RateLimited counts requests rejected by the per-client limiter
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "travelmitr_rate_limited_total", Help: "Requests rejected with 429."},
	)
)

// RegisterDefault registers collectors to the API registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(OptionsRanked)
		Registry.MustRegister(RecommendedModes)
		Registry.MustRegister(GeoRequests)
		Registry.MustRegister(RateLimited)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	RegisterDefault()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
