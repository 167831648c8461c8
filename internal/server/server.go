package server

import (
	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/handler"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
)

// NewServer creates the metrics server from the configured handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.MetricsAddress == "" {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handlers.HTTP.Init(), cfg.MetricsAddress, logger), nil
}
