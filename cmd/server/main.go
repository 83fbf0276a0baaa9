package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sp1r1tt/dashboard2025/internal/api"
	"github.com/sp1r1tt/dashboard2025/internal/auth"
	"github.com/sp1r1tt/dashboard2025/internal/config"
	"github.com/sp1r1tt/dashboard2025/internal/db"
	"github.com/sp1r1tt/dashboard2025/internal/group"
	"github.com/sp1r1tt/dashboard2025/internal/migrations"
	"github.com/sp1r1tt/dashboard2025/internal/product"
	"github.com/sp1r1tt/dashboard2025/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx := context.Background()

	if err := migrations.Up(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DBRetryAttempts, cfg.DBRetryBackoff)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	userRepo := user.NewRepository(database)
	groupRepo := group.NewRepository(database)
	productRepo := product.NewRepository(database)

	codec := auth.NewCodec([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authService := auth.NewService(userRepo, codec, cfg.BcryptCost)

	if _, err := authService.BootstrapAdmin(ctx); err != nil {
		slog.Error("failed to bootstrap admin user", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterDeps{
		AuthService:        authService,
		Codec:              codec,
		Users:              userRepo,
		Groups:             groupRepo,
		Products:           productRepo,
		DBPinger:           database,
		Version:            cfg.Version,
		SecureCookies:      cfg.SecureCookies,
		TokenTTL:           cfg.TokenTTL,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting dashboard server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
