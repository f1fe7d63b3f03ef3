package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBucket(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{302, "3xx"},
		{404, "4xx"},
		{429, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusBucket(tt.code), "code %d", tt.code)
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()

	before := testutil.ToFloat64(PredictionsTotal.WithLabelValues("Medium"))
	c.RecordPrediction("Medium", 35, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(PredictionsTotal.WithLabelValues("Medium")))

	beforeErr := testutil.ToFloat64(PredictionErrorsTotal.WithLabelValues("unknown_category"))
	c.RecordError("unknown_category")
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(PredictionErrorsTotal.WithLabelValues("unknown_category")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/ping", "2xx"))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/ping", "2xx")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fraudcheck_http_requests_total")
}
