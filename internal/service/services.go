package service

import (
	"github.com/MKhiriev/go-dataset-loader/internal/adapter"
	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/metrics"
	"github.com/MKhiriev/go-dataset-loader/internal/store"
	"github.com/MKhiriev/go-dataset-loader/internal/validators"
)

type Services struct {
	DatasetService DatasetService
	FlushJob       FlushJob
}

// NewServices builds the service layer. Whole inputs are validated without a
// size limit because they are split into API-sized batches afterwards.
func NewServices(datasetAdapter adapter.DatasetAdapter, storages *store.Storages, m *metrics.UploaderMetrics, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	datasetSvc := NewDatasetService(
		datasetAdapter,
		storages.StagedItemRepository,
		validators.NewDatasetItemBatchValidator(0),
		m,
		cfg,
		logger.GetChildLogger(),
	)

	return &Services{
		DatasetService: datasetSvc,
		FlushJob:       NewFlushJob(datasetSvc, cfg.Workers.FlushInterval, logger.GetChildLogger()),
	}
}
