package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carewell-health/carewell-backend/api/routes"
	"github.com/carewell-health/carewell-backend/internal/auth"
	"github.com/carewell-health/carewell-backend/internal/logs"
	"github.com/carewell-health/carewell-backend/internal/providers"
	"github.com/carewell-health/carewell-backend/internal/reminders"
	"github.com/carewell-health/carewell-backend/internal/users"
	"github.com/carewell-health/carewell-backend/internal/wellness"
	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/carewell-health/carewell-backend/pkg/db"
	"github.com/carewell-health/carewell-backend/pkg/logger"
	"github.com/carewell-health/carewell-backend/pkg/metrics"
	"github.com/carewell-health/carewell-backend/pkg/migrate"
	"github.com/carewell-health/carewell-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	userRepo := users.NewRepository(dbClient.DB())
	logRepo := logs.NewRepository(dbClient.DB())
	reminderRepo := reminders.NewRepository(dbClient.DB())

	authService, err := auth.NewService(userRepo, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	wellnessService, err := wellness.NewService(userRepo, logRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create wellness service", err)
		os.Exit(1)
	}

	providerService, err := providers.NewService(userRepo, wellnessService)
	if err != nil {
		logg.Error(context.Background(), "failed to create provider service", err)
		os.Exit(1)
	}

	handler := routes.NewRouter(routes.Deps{
		Config:       cfg,
		Logger:       logg,
		DB:           dbClient,
		Redis:        redisClient,
		HTTPMetrics:  httpMetrics,
		MetricsView:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AuthService:  authService,
		Wellness:     wellnessService,
		Providers:    providerService,
		UserRepo:     userRepo,
		LogRepo:      logRepo,
		ReminderRepo: reminderRepo,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var closeErr error
		closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
		closeErr = multierr.Append(closeErr, redisClient.Close())
		closeErr = multierr.Append(closeErr, dbClient.Close())
		if closeErr != nil {
			logg.Error(ctx, "shutdown completed with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
