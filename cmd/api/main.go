package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"taskapi/internal/api"
	"taskapi/pkg/config"
	"taskapi/pkg/logging"
	"taskapi/pkg/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	logger, err := logging.NewAppLogger("taskapi")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	telemetry, err := tracing.InitTelemetry(tracing.TelemetryConfig{
		ServiceName:    "taskapi",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		MetricsPort:    "9091",
		OTLPEndpoint:   "localhost:4317",
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer telemetry.Shutdown(context.Background())

	metrics := tracing.NewAppMetrics(telemetry.PrometheusRegistry)

	if err := api.StartServerWithConfig(ctx, cfg, logger, metrics); err != nil {
		log.Fatal("Server failed:", err)
	}

	logger.Logger.Info("Shutting down gracefully...")
}
