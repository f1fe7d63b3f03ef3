// Package metrics provides Prometheus instrumentation for the scoring service.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fraudcheck"

var (
	// HTTPRequestsTotal counts HTTP requests by method, route, and status class.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route pattern, and status class.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// PredictionsTotal counts successful scorings by risk level.
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Total scored transactions by risk level.",
		},
		[]string{"risk_level"},
	)

	// PredictionErrorsTotal counts failed scorings by error kind.
	PredictionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_errors_total",
			Help:      "Total failed scoring requests by error kind.",
		},
		[]string{"kind"},
	)

	// RiskPercent observes the adjusted risk percentage shown to operators.
	RiskPercent = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "risk_percent",
		Help:      "Adjusted risk percentage of scored transactions.",
		Buckets:   prometheus.LinearBuckets(10, 10, 10),
	})

	// PredictionDuration observes encode + score + adjust latency.
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Time spent scoring one transaction.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		PredictionsTotal,
		PredictionErrorsTotal,
		RiskPercent,
		PredictionDuration,
	)
}

// Middleware returns a fiber handler that records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Route pattern, not the raw path, keeps label cardinality bounded.
		path := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(method, path, statusBucket(status)).Inc()
		return err
	}
}

// Handler exposes the default Prometheus registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Collector records scoring outcomes into the package metrics.
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) RecordPrediction(level string, riskPercent float64, d time.Duration) {
	PredictionsTotal.WithLabelValues(level).Inc()
	RiskPercent.Observe(riskPercent)
	PredictionDuration.Observe(d.Seconds())
}

func (c *Collector) RecordError(kind string) {
	PredictionErrorsTotal.WithLabelValues(kind).Inc()
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
