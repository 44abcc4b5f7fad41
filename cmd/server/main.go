package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"translator-backend/internal/api"
	"translator-backend/internal/metrics"
	"translator-backend/internal/services"
	"translator-backend/internal/translator"
	"translator-backend/internal/translator_provider"
	"translator-backend/pkg/types"
)

func main() {
	// Load application configuration from .env and the environment
	globalConfig, err := types.LoadConfig(".env")
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// Initialize logger with human-readable timestamps
	logConfig := zap.NewProductionConfig()
	logConfig.EncoderConfig.TimeKey = "time"
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logLevel := zap.InfoLevel
	if globalConfig.Server.LogLevel != "" {
		if err := logLevel.UnmarshalText([]byte(globalConfig.Server.LogLevel)); err != nil {
			logLevel = zap.InfoLevel
		}
	}
	logConfig.Level = zap.NewAtomicLevelAt(logLevel)
	logger, err := logConfig.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	if globalConfig.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	// Initialize provider factory and create the configured translator provider
	providerFactory := translator_provider.NewFactory(globalConfig)
	provider, err := providerFactory.CreateConfiguredProvider(context.Background())
	if err != nil {
		logger.Fatal("failed to create translator provider", zap.Error(err))
	}
	logger.Info("translator provider ready", zap.String("provider", provider.Name()))

	// Initialize services
	translatorService := translator.NewTranslatorService(
		logger,
		translator_provider.Instrument(provider, m),
		m,
		globalConfig.Audio.TempDir,
	)

	svc := services.NewServices(translatorService)

	// Start the HTTP server
	runServer(logger, globalConfig, svc, m, registry)
}

func runServer(logger *zap.Logger, cfg *types.Config, svc *services.Services, m *metrics.Metrics, registry *prometheus.Registry) {
	apiServer := api.NewGinServer(logger, svc, m, registry)
	// Create HTTP server
	addr := cfg.Server.GetServerAddress()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      apiServer.GetRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", zap.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Notify on SIGINT (Ctrl+C) and SIGTERM (kill command)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
