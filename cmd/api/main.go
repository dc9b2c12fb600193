package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/garage-assistant/internal/api/http"
	"github.com/spec-kit/garage-assistant/internal/api/http/handlers"
	"github.com/spec-kit/garage-assistant/internal/bootstrap"
	"github.com/spec-kit/garage-assistant/internal/config"
	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	pipeline, err := bootstrap.Build(cfg, logger, bootstrap.Options{})
	if err != nil {
		logger.Fatal("failed to build pipeline", zap.Error(err))
	}
	defer pipeline.Close()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.App.RequestTimeout() + 10*time.Second,
	})
	httptransport.RegisterMiddlewares(app, logger, pipeline.Metrics, httptransport.MiddlewareConfig{
		Timeout:        cfg.App.RequestTimeout(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pipeline.Redis, pipeline.LLMReady),
		Chat:     handlers.NewChatHandler(pipeline.Chat),
		Agents:   handlers.NewAgentsHandler(domain.Agents),
		Terminal: handlers.NewTerminalHandler(pipeline.Slot),
		Metrics:  handlers.NewMetricsHandler(pipeline.Metrics),

		ChatLimiter: httptransport.NewChatLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
