package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workforce-performance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/workforce-performance-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/upstream"
	"github.com/cmlabs-hris/workforce-performance-go/internal/repository/restapi"
	performanceService "github.com/cmlabs-hris/workforce-performance-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(cfg.App, os.Stdout)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("Invalid timezone", "error", err)
		os.Exit(1)
	}

	upstreamClient := upstream.NewClient(cfg.Upstream)
	performanceRepo := restapi.NewPerformanceRepository(upstreamClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, loc)

	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)

	router := appHTTP.NewRouter(cfg.App, logger, JWTService, performanceHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "upstream", cfg.Upstream.BaseURL, "timezone", loc.String())
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}
}
