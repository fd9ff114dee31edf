package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"medportal/internal/backend"
	"medportal/internal/config"
	handlers "medportal/internal/http/handler"
	"medportal/internal/http/middleware"
	"medportal/internal/notify"
	"medportal/internal/otel"
	"medportal/internal/retry"
	"medportal/internal/service"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := otel.Init(context.Background(), time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Outbound client to the authoritative medical backend
	api := backend.NewHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	reconcile := retry.Policy{
		MaxRetries: cfg.Reconcile.MaxRetries,
		BaseDelay:  cfg.Reconcile.BaseDelay,
	}

	records := service.NewRecordService(api)
	uploads := service.NewUploadService(api, reconcile, cfg.Upload.MaxFileBytes)
	profiles := service.NewProfileService(api)

	// Notification shell lives for the whole process; the welcome toast is
	// shown once per lifetime.
	center := notify.NewCenter(cfg.ToastTTL)
	defer center.Close()
	if center.MarkWelcomeShown() {
		center.Push(notify.LevelInfo, "Welcome to your medical portal")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Fiber's default 4 MiB body limit would reject valid 16 MiB exam
		// files before they ever reach the upload coordinator.
		BodyLimit: int(cfg.Upload.MaxBodyBytes),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, api, records, uploads, profiles, center, reg)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
