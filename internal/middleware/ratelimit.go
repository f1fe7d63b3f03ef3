package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitConfig bounds scoring requests per client IP.
type RateLimitConfig struct {
	Max        int
	Expiration time.Duration
	// Storage nil keeps counters in process memory.
	Storage fiber.Storage
}

// PredictLimiter throttles the scoring endpoint. Exceeding the limit still
// renders a page through onLimit so the form stays usable.
func PredictLimiter(cfg RateLimitConfig, onLimit fiber.Handler) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Expiration,
		Storage:    cfg.Storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "predict:" + c.IP()
		},
		LimitReached: onLimit,
	})
}
