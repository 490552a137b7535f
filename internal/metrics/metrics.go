// Package metrics provides Prometheus metrics collection for the menu service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// MenuGenerationsTotal tracks generate and regenerate runs by outcome.
	MenuGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_generations_total",
			Help: "Total number of menu generations",
		},
		[]string{"operation", "status"},
	)

	// MenuGenerationDuration tracks how long a generation takes end to end.
	MenuGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menu_generation_duration_seconds",
			Help:    "Menu generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	// FilledSlotsTotal counts slots filled per meal type.
	FilledSlotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_filled_slots_total",
			Help: "Total number of menu slots filled",
		},
		[]string{"meal_type"},
	)

	// ShoppingListSize tracks the number of lines in generated shopping lists.
	ShoppingListSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopping_list_items",
			Help:    "Number of items in generated shopping lists",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// CircuitBreakerState exposes 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordMenuGeneration records metrics for a generate or regenerate run.
func RecordMenuGeneration(operation string, duration time.Duration, status string) {
	MenuGenerationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	MenuGenerationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordFilledSlots adds count filled slots for mealType.
func RecordFilledSlots(mealType string, count int) {
	FilledSlotsTotal.WithLabelValues(mealType).Add(float64(count))
}

// RecordShoppingListSize observes the length of a generated shopping list.
func RecordShoppingListSize(items int) {
	ShoppingListSize.Observe(float64(items))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// RecordCircuitBreakerState sets the state gauge of a named breaker.
func RecordCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
