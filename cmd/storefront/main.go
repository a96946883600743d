package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minhtamngo/bookstore-storefront/api/routes"
	"github.com/minhtamngo/bookstore-storefront/internal/accounts"
	"github.com/minhtamngo/bookstore-storefront/internal/authapi"
	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	cartstore "github.com/minhtamngo/bookstore-storefront/internal/cart"
	"github.com/minhtamngo/bookstore-storefront/internal/catalog"
	"github.com/minhtamngo/bookstore-storefront/internal/dashboard"
	"github.com/minhtamngo/bookstore-storefront/internal/images"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/orders"
	"github.com/minhtamngo/bookstore-storefront/internal/payments"
	"github.com/minhtamngo/bookstore-storefront/internal/reviews"
	"github.com/minhtamngo/bookstore-storefront/internal/session"
	"github.com/minhtamngo/bookstore-storefront/pkg/config"
	"github.com/minhtamngo/bookstore-storefront/pkg/env"
	"github.com/minhtamngo/bookstore-storefront/pkg/kvstore"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := newStateStore(cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open state store", err)
		os.Exit(1)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logg.Error(context.Background(), "error closing state store", err)
			}
		}()
	}

	sessions := session.NewStore()
	cart := cartstore.NewStore()

	// Rehydrate before wiring subscribers so startup reads never overwrite
	// live mutations.
	session.NewPersistence(store, logg).Bind(sessions)
	cartstore.NewPersistence(store, logg).Bind(cart)

	api, err := backend.NewClient(
		cfg.Backend.BaseURL,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		backend.WithTokenSource(sessions),
		backend.WithUnauthorizedHook(sessions.Logout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build backend client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	notifier := notify.NewNotifier(0)

	router := routes.NewRouter(
		cfg,
		logg,
		sessions,
		cart,
		notifier,
		routes.Services{
			Auth:      authapi.NewService(api),
			Catalog:   catalog.NewService(api),
			Accounts:  accounts.NewService(api),
			Orders:    orders.NewService(api),
			Payments:  payments.NewService(api),
			Reviews:   reviews.NewService(api),
			Images:    images.NewService(api),
			Dashboard: dashboard.NewService(api),
		},
		httpMetrics,
		metricsHandler,
	)

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":           cfg.App.Env,
		"addr":          addr,
		"state_backend": cfg.State.Kind(),
	})
	logg.Info(ctx, "starting storefront gateway")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront gateway stopped unexpectedly", err)
		os.Exit(1)
	}
}

func newStateStore(cfg *config.Config, logg *logger.Logger) (kvstore.Store, error) {
	switch cfg.State.Kind() {
	case config.StateBackendMemory:
		return kvstore.NewMemoryStore(), nil
	case config.StateBackendRedis:
		return kvstore.NewRedisStore(context.Background(), cfg.State.RedisURL)
	default:
		return kvstore.NewFileStore(cfg.State.Dir)
	}
}
