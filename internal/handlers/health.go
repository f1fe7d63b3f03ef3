package handlers

import (
	"context"
	"time"

	"fraudcheck/internal/repositories/cache"
	"fraudcheck/internal/services/ml"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports model and session storage status.
type HealthHandler struct {
	artifacts *ml.Artifacts
	// redis is nil when sessions are kept in memory.
	redis *redis.Client
}

func NewHealthHandler(artifacts *ml.Artifacts, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{artifacts: artifacts, redis: redisClient}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK

	sessions := fiber.Map{"backend": "memory", "status": "connected"}
	if h.redis != nil {
		sessions["backend"] = "redis"
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := cache.HealthCheck(ctx, h.redis); err != nil {
			sessions["status"] = "disconnected"
			sessions["error"] = err.Error()
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		} else {
			poolStats := h.redis.PoolStats()
			sessions["pool_stats"] = fiber.Map{
				"hits":        poolStats.Hits,
				"misses":      poolStats.Misses,
				"timeouts":    poolStats.Timeouts,
				"total_conns": poolStats.TotalConns,
				"idle_conns":  poolStats.IdleConns,
				"stale_conns": poolStats.StaleConns,
			}
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"version": "1.0.0",
		"services": fiber.Map{
			"model": fiber.Map{
				"features":      h.artifacts.Pipeline.Width(),
				"encoder_width": h.artifacts.Encoder.Width(),
			},
			"sessions": sessions,
		},
	})
}
