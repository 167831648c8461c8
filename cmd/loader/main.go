package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dataset-loader/internal/adapter"
	"github.com/MKhiriev/go-dataset-loader/internal/client"
	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/handler"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/metrics"
	"github.com/MKhiriev/go-dataset-loader/internal/server"
	"github.com/MKhiriev/go-dataset-loader/internal/service"
	"github.com/MKhiriev/go-dataset-loader/internal/store"
	"github.com/MKhiriev/go-dataset-loader/internal/validators"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("loader")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled
	log.Debug().Object("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, client.RenderError(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	datasetAdapter, err := adapter.NewHTTPDatasetAdapter(
		cfg.Adapter,
		cfg.App,
		buildInfo.UserAgent(),
		validators.NewDatasetItemBatchValidator(config.MaxBatchSize),
		log.GetChildLogger(),
	)
	if err != nil {
		return fmt.Errorf("error creating dataset adapter: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services := service.NewServices(datasetAdapter, storages, metrics.NewUploaderMetrics(registry), *cfg, log)

	srv, err := newServer(services, registry, buildInfo, cfg.Server, log)
	if err != nil {
		return err
	}

	return client.NewApp(services, srv, cfg, os.Stdin, os.Stdout, log.GetChildLogger()).Run(ctx)
}

// newServer returns nil without error when no metrics address is configured.
func newServer(services *service.Services, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, cfg config.Server, log *logger.Logger) (server.Server, error) {
	if cfg.MetricsAddress == "" {
		return nil, nil
	}

	handlers, err := handler.NewHandlers(services, gatherer, buildInfo, cfg, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg, log.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}
	return srv, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.BuildCommit())
}
