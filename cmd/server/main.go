// Package main is the entry point for the fraud check web server.
// It loads the model artifacts, sets up sessions and the HTTP server,
// and serves the scoring form.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fraudcheck/internal/config"
	"fraudcheck/internal/handlers"
	"fraudcheck/internal/logging"
	"fraudcheck/internal/metrics"
	"fraudcheck/internal/middleware"
	"fraudcheck/internal/repositories/cache"
	"fraudcheck/internal/services/ml"
	"fraudcheck/internal/services/prediction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Model artifacts are loaded once; a bad set is fatal.
	artifacts, err := ml.LoadArtifacts(cfg.ModelDir)
	if err != nil {
		log.Error("failed to load model artifacts", "dir", cfg.ModelDir, "error", err)
		os.Exit(1)
	}
	log.Info("✅ model artifacts loaded",
		"dir", cfg.ModelDir,
		"features", artifacts.Pipeline.Width(),
	)

	// Session and rate limiter storage: Redis when configured, memory otherwise.
	var sessionStorage, limiterStorage fiber.Storage
	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient = cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := cache.HealthCheck(ctx, redisClient)
		cancel()
		if err != nil {
			log.Error("failed to connect to redis", "host", cfg.RedisHost, "error", err)
			os.Exit(1)
		}
		sessionStorage = cache.NewStorage(redisClient, cache.DefaultSessionPrefix)
		limiterStorage = cache.NewStorage(redisClient, cache.DefaultLimiterPrefix)
		log.Info("✅ redis session storage connected", "host", cfg.RedisHost, "db", cfg.RedisDB)
	} else {
		log.Warn("REDIS_HOST not set, sessions are kept in memory")
	}

	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis connection", "error", err)
			}
		}
	}()

	sessions := middleware.NewSessionStore(middleware.SessionConfig{
		CookieName: cfg.SessionCookie,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.CookieSecure,
		Storage:    sessionStorage,
	})

	svc := prediction.NewService(artifacts.Encoder, artifacts.Pipeline, log, metrics.NewCollector())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "fraudcheck",
		DisableStartupMessage: config.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
	}))
	app.Use(metrics.Middleware())

	// Routes
	handlers.SetupRoutes(app, handlers.Handlers{
		Prediction: handlers.NewPredictionHandler(svc, sessions, log),
		Health:     handlers.NewHealthHandler(artifacts, redisClient),
		RateLimit: middleware.RateLimitConfig{
			Max:        cfg.PredictRateLimit,
			Expiration: cfg.PredictRateWindow,
			Storage:    limiterStorage,
		},
	})

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warn("graceful shutdown failed", "error", err)
	}
}
