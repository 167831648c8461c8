package http

import (
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/service"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	datasetService service.DatasetService
	gatherer       prometheus.Gatherer
	buildInfo      models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(datasetService service.DatasetService, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		datasetService: datasetService,
		gatherer:       gatherer,
		buildInfo:      buildInfo,
		logger:         logger,
	}
}
