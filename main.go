package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"

	intconfig "travelmitr/internal/config"
	"travelmitr/internal/geo"
	router "travelmitr/internal/http"
	h "travelmitr/internal/http/handlers"
	"travelmitr/internal/http/middleware"
	"travelmitr/internal/metrics"
	"travelmitr/internal/seed"
	"travelmitr/internal/services"
	"travelmitr/internal/utils"
)

func main() {
	reset := flag.Bool("reset", false, "truncate all tables, reseed and exit")
	flag.Parse()

	env, err := intconfig.LoadEnv()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: utils.ParseLevel(env.LogLevel),
	})))
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DB)
	if err != nil {
		slog.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer intconfig.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := intconfig.EnsureSchema(ctx, db); err != nil {
		cancel()
		slog.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	seeder, err := seed.New(db)
	if err != nil {
		cancel()
		slog.Error("load seed catalog", "error", err)
		os.Exit(1)
	}
	if *reset {
		err := seeder.Reset(ctx)
		cancel()
		if err != nil {
			slog.Error("reset database", "error", err)
			os.Exit(1)
		}
		slog.Info("database reset and reseeded")
		return
	}
	if env.SeedOnStart {
		seeded, err := seeder.SeedIfEmpty(ctx)
		if err != nil {
			cancel()
			slog.Error("seed database", "error", err)
			os.Exit(1)
		}
		if seeded {
			slog.Info("seeded sample catalog")
		}
	}
	cancel()

	metrics.RegisterDefault()

	hd := &h.Handler{
		DB:     db,
		Tokens: services.Tokens{Secret: []byte(env.JWTSecret), TTL: env.JWTExpire},
	}
	if env.GeoEnabled {
		// public Nominatim allows one request per second
		hd.Geo = geo.NewClient(env.NominatimURL, env.OSRMURL, 1)
	}

	limiter := middleware.NewRateLimiter(env.OptimizeRatePerSec, env.OptimizeRateBurst)
	defer limiter.Stop()

	r := router.NewRouter(env, hd, limiter)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           gzhttp.GzipHandler(r),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		return
	}

	slog.Info("server stopped")
}
