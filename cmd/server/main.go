package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/benvon/gtm-copilot/api/openapi"
	"github.com/benvon/gtm-copilot/internal/config"
	"github.com/benvon/gtm-copilot/internal/logger"
	"github.com/benvon/gtm-copilot/internal/server"
	"github.com/benvon/gtm-copilot/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging, including CORS decisions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag
	cfg.ServerDebugMode = debugMode

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		// Sync fails on stderr/stdout for some platforms; nothing useful to do about it
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracing := false
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			shutdownTracer, err := telemetry.Setup(ctx, telemetry.Options{
				ServiceName: cfg.ServiceName,
				Endpoint:    cfg.OTELEndpoint,
				Insecure:    cfg.OTELInsecure,
			})
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracing = true
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := shutdownTracer(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	handler, err := server.NewRouter(cfg, zapLogger,
		server.WithTracing(tracing),
		server.WithOpenAPIDocument(openapi.Document),
	)
	if err != nil {
		zapLogger.Fatal("failed_to_build_router", zap.Error(err))
	}

	srv := server.New(cfg, handler, zapLogger)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Fatal("server_failed", zap.Error(err))
	}
}
