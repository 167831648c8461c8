package handler

import (
	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/handler/http"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/service"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.MetricsAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services.DatasetService, gatherer, buildInfo, logger),
	}, nil
}
