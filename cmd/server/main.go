package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/levelup/internal/adapter"
	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/handler"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/metrics"
	"github.com/MKhiriev/levelup/internal/server"
	"github.com/MKhiriev/levelup/internal/service"
	"github.com/MKhiriev/levelup/internal/store"
	"github.com/MKhiriev/levelup/internal/workers"
	"github.com/MKhiriev/levelup/models"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTimeout   = 10 * time.Minute
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("levelup-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	generator, err := adapter.NewGeminiGenerator(cfg.Adapter.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating text generator")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(generator, storages, buildInfo, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers.NewWorkers(
		workers.NewTickerWorker("rate-limit-sweeper", limiterSweepInterval, func(context.Context) {
			handlers.HTTP.SweepIdleClients(limiterIdleTimeout)
		}, log),
	).Run(ctx)

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
