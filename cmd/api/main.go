// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Nolfolio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from the environment (and .env when present).
//  3. Connect to Redis when configured.
//  4. Build the catalog.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/nolfolio/internal/api"
	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/internal/contact"
	"github.com/taibuivan/nolfolio/internal/gallery"
	"github.com/taibuivan/nolfolio/internal/layout"
	"github.com/taibuivan/nolfolio/internal/platform/config"
	"github.com/taibuivan/nolfolio/internal/platform/constants"
	"github.com/taibuivan/nolfolio/internal/platform/middleware"
	redisstore "github.com/taibuivan/nolfolio/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "nolfolio"))
	slog.SetDefault(log)

	log.Info("[Nolfolio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		must(log, err, "load .env file")
	}

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "nolfolio"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("redis_enabled", cfg.RedisURL != ""),
	)

	// Root context for the process; cancelled on shutdown so background
	// workers (rate limiter cleanup, live scatter cyclers) stop with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Redis (optional) ───────────────────────────────────────────────
	var (
		rdb        *goredis.Client
		guard      contact.Guard = contact.NewMemoryGuard()
		checkCache func(context.Context) error
	)
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		guard = contact.NewRedisGuard(rdb)
		checkCache = redisstore.Checker(rdb)
	}

	// ── 4. Catalog ────────────────────────────────────────────────────────
	cat := catalog.New(cfg.R2PublicURL)
	log.Info("catalog_loaded",
		slog.Int("videos", len(cat.Videos())),
		slog.Int("lost_files", len(cat.LostFiles())),
		slog.Int("photos", len(cat.Photos())),
	)

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	relay := contact.NewFormRelay(cfg.ContactRelayURL, nil, log)
	contactService := contact.NewService(guard, relay, cfg.ContactDedupeTTL, log)

	originAllowed := func(origin string) bool {
		return cfg.IsDevelopment() || origin == "" || middleware.OriginAllowed(origin, cfg.AllowedOriginSuffix)
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCache: checkCache,
		CheckRelay: func(context.Context) error {
			if state := relay.State(); state == "open" {
				return errors.New("contact relay circuit breaker is open")
			}
			return nil
		},
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Gallery:   gallery.NewHandler(gallery.NewService(cat, log)),
		Layout:    layout.NewHandler(cat, cfg.ScatterSlots, originAllowed),
		Contact:   contact.NewHandler(contactService, constants.ContactRateLimitRequests, constants.ContactRateLimitWindow),
	}

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	// Shutdown does not track hijacked connections. Request contexts derive
	// from rootCtx, so cancelling it ends the live scatter sessions.
	rootCancel()

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
