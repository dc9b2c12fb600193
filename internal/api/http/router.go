package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/spec-kit/garage-assistant/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Chat     *handlers.ChatHandler
	Agents   *handlers.AgentsHandler
	Terminal *handlers.TerminalHandler
	Metrics  *handlers.MetricsHandler

	// ChatLimiter throttles POST /chat when set.
	ChatLimiter *rate.Limiter
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.ChatLimiter != nil {
		app.Post("/chat", rateLimitMiddleware(cfg.ChatLimiter), cfg.Chat.Chat)
	} else {
		app.Post("/chat", cfg.Chat.Chat)
	}
	app.Get("/agents", cfg.Agents.List)
	app.Get("/terminal-output", cfg.Terminal.Output)

	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Snapshot)
	}
}
