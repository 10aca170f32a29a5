package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// NewApp wires the handler into a fiber app under /api/v1.
func NewApp(handler SchedulerHandler, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(fiberrecover.New())
	app.Use(requestIDMiddleware)
	app.Use(loggingMiddleware(logger.With("component", "http")))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/health", handler.Health)
	}

	return app
}

func requestIDMiddleware(ctx *fiber.Ctx) error {
	reqID := "req_" + uuid.New().String()[:8]
	ctx.Locals(requestIDKey, reqID)
	ctx.Set("X-Request-ID", reqID)
	return ctx.Next()
}

func requestIDFrom(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// loggingMiddleware logs each request at INFO level.
func loggingMiddleware(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Info("request",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
			"duration", time.Since(start).String(),
			"request_id", requestIDFrom(ctx),
		)
		return err
	}
}
