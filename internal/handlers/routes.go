package handlers

import (
	"fraudcheck/internal/metrics"
	"fraudcheck/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Prediction *PredictionHandler
	Health     *HealthHandler
	RateLimit  middleware.RateLimitConfig
}

func SetupRoutes(app *fiber.App, h Handlers) {
	setupPublicRoutes(app, h)
	setupOpsRoutes(app, h)
}

func setupPublicRoutes(app *fiber.App, h Handlers) {
	app.Get("/", h.Prediction.Home)
	app.Post("/predict",
		middleware.PredictLimiter(h.RateLimit, h.Prediction.RateLimited),
		h.Prediction.Predict,
	)
	app.Post("/history/clear", h.Prediction.ClearHistory)
}

func setupOpsRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.HealthCheck)
	app.Get("/metrics", metrics.Handler())
}
