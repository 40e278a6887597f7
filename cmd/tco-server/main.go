package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nordic-tco/tco-calculator/internal/config"
	"github.com/nordic-tco/tco-calculator/internal/logging"
	"github.com/nordic-tco/tco-calculator/internal/server"
	"github.com/nordic-tco/tco-calculator/internal/tools"
	"github.com/nordic-tco/tco-calculator/internal/tracing"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("default_country", cfg.DefaultCountry),
		zap.Int("max_years", cfg.MaxYears),
		zap.Duration("shutdown_timeout", cfg.ShutdownTimeout),
	)

	tracer, shutdownTracing, err := tracing.InitTracing(context.Background(), cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}

	registry := tools.Registry(cfg, tracer)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.NewRouter(registry, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port), zap.Strings("tools", tools.Names(registry)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced shutdown", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("failed to flush spans", zap.Error(err))
	}

	logger.Info("server stopped")
}
