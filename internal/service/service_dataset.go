package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/adapter"
	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/metrics"
	"github.com/MKhiriev/go-dataset-loader/internal/store"
	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/internal/validators"
	"github.com/MKhiriev/go-dataset-loader/models"
)

type datasetService struct {
	adapter   adapter.DatasetAdapter
	staged    store.StagedItemRepository
	validator validators.Validator
	metrics   *metrics.UploaderMetrics
	ids       *utils.UUIDGenerator

	batchSize     int
	flushLimit    int
	maxAttempts   int
	retryAttempts uint64
	retryBackoff  time.Duration
	skipDedup     bool

	now    func() time.Time
	logger *logger.Logger
}

// NewDatasetService wires a [DatasetService]. A nil m disables metrics.
func NewDatasetService(
	datasetAdapter adapter.DatasetAdapter,
	staged store.StagedItemRepository,
	validator validators.Validator,
	m *metrics.UploaderMetrics,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) DatasetService {
	batchSize := cfg.Workers.BatchSize
	if batchSize <= 0 || batchSize > config.MaxBatchSize {
		batchSize = config.MaxBatchSize
	}

	return &datasetService{
		adapter:       datasetAdapter,
		staged:        staged,
		validator:     validator,
		metrics:       m,
		ids:           utils.NewUUIDGenerator(),
		batchSize:     batchSize,
		flushLimit:    cfg.Workers.FlushLimit,
		maxAttempts:   cfg.Workers.MaxAttempts,
		retryAttempts: cfg.Adapter.RetryAttempts,
		retryBackoff:  cfg.Adapter.RetryBackoff,
		skipDedup:     cfg.Target.SkipDeduplication,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *datasetService) EnsureDataset(ctx context.Context, name, description string) (models.Dataset, error) {
	if strings.TrimSpace(name) == "" {
		return models.Dataset{}, ErrMissingName
	}

	dataset, err := s.adapter.GetDatasetByName(ctx, name)
	if err == nil {
		return dataset, nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		s.logger.Err(err).Str("func", "datasetService.EnsureDataset").Str("dataset", name).Msg("error looking dataset up")
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrEnsureDataset, err)
	}

	err = s.adapter.CreateDataset(ctx, models.DatasetCreateRequest{
		ID:          s.ids.Generate(),
		Name:        name,
		Description: description,
	})
	// another loader may have created it in the meantime
	if err != nil && !errors.Is(err, adapter.ErrConflict) {
		s.logger.Err(err).Str("func", "datasetService.EnsureDataset").Str("dataset", name).Msg("error creating dataset")
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrEnsureDataset, err)
	}

	dataset, err = s.adapter.GetDatasetByName(ctx, name)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrEnsureDataset, err)
	}

	s.logger.Info().Str("dataset", dataset.Name).Str("id", dataset.ID).Msg("dataset created")
	return dataset, nil
}

func (s *datasetService) Insert(ctx context.Context, ref models.DatasetRef, items []models.DatasetItem) (models.UploadResult, error) {
	var result models.UploadResult

	prepared, duplicates, err := s.prepare(items)
	if err != nil {
		return result, err
	}
	result.Duplicates = duplicates
	s.metrics.AddItems(metrics.OutcomeDuplicate, duplicates)

	chunks, err := s.chunk(ctx, ref, prepared.items())
	if err != nil {
		return result, err
	}

	for i, chunk := range chunks {
		if err = s.upload(ctx, chunk); err != nil {
			for _, rest := range chunks[i:] {
				result.Failed += rest.Len()
			}
			s.metrics.AddItems(metrics.OutcomeFailed, result.Failed)

			s.logger.Err(err).
				Str("func", "datasetService.Insert").
				Str("dataset", ref.String()).
				Int("batch", i).
				Int("uploaded", result.Items).
				Msg("upload stopped")
			return result, fmt.Errorf("%w: batch %d of %d: %w", ErrUploadFailed, i+1, len(chunks), err)
		}

		result.Batches++
		result.Items += chunk.Len()
		s.metrics.AddItems(metrics.OutcomeUploaded, chunk.Len())
	}

	s.logger.Info().
		Str("dataset", ref.String()).
		Int("batches", result.Batches).
		Int("items", result.Items).
		Int("duplicates", result.Duplicates).
		Msg("items inserted")

	return result, nil
}

func (s *datasetService) Stage(ctx context.Context, ref models.DatasetRef, items []models.DatasetItem) (int, error) {
	prepared, _, err := s.prepare(items)
	if err != nil {
		return 0, err
	}

	// validate everything before the first row is written
	if _, err = s.chunk(ctx, ref, prepared.items()); err != nil {
		return 0, err
	}

	rows := make([]models.StagedItem, 0, len(prepared))
	for _, p := range prepared {
		rows = append(rows, models.StagedItem{
			Ref:         ref,
			Item:        p.item,
			ContentHash: p.hash,
		})
	}

	staged, err := s.staged.Stage(ctx, rows)
	if err != nil {
		s.logger.Err(err).Str("func", "datasetService.Stage").Str("dataset", ref.String()).Msg("error staging items")
		return 0, fmt.Errorf("%w: %w", ErrStagingFailed, err)
	}

	s.metrics.AddItems(metrics.OutcomeStaged, staged)
	s.metrics.AddItems(metrics.OutcomeDuplicate, len(items)-staged)
	s.refreshPending(ctx)

	return staged, nil
}

func (s *datasetService) Flush(ctx context.Context) (models.UploadResult, error) {
	var result models.UploadResult

	pending, err := s.staged.Pending(ctx, s.flushLimit)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrFlushFailed, err)
	}
	if len(pending) == 0 {
		s.metrics.SetPending(0)
		return result, nil
	}

	var errs []error
	for _, group := range groupByRef(pending) {
		groupResult, groupErr := s.flushGroup(ctx, group)
		result.Add(groupResult)
		if groupErr != nil {
			errs = append(errs, groupErr)
		}
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
	}

	s.refreshPending(ctx)

	s.logger.Info().
		Int("pending", len(pending)).
		Int("uploaded", result.Items).
		Int("failed", result.Failed).
		Msg("flush finished")

	if len(errs) > 0 {
		return result, fmt.Errorf("%w: %w", ErrFlushFailed, errors.Join(errs...))
	}
	return result, nil
}

// flushGroup uploads the staged items of one dataset. A failing chunk does
// not stop the following ones; every chunk's rows are marked accordingly.
func (s *datasetService) flushGroup(ctx context.Context, group stagedGroup) (models.UploadResult, error) {
	var result models.UploadResult

	batch, err := models.NewDatasetItemBatch(group.ref, group.items())
	if err != nil {
		result.Failed = len(group.rows)
		return result, s.markFailed(ctx, group.ids(), 1, err)
	}
	chunks, err := batch.Chunk(s.batchSize)
	if err != nil {
		return result, err
	}

	var errs []error
	allIDs := group.ids()
	offset := 0
	for _, chunk := range chunks {
		ids := allIDs[offset : offset+chunk.Len()]
		offset += chunk.Len()

		// rows that can never pass validation are failed right away
		if err = s.validator.Validate(ctx, chunk); err != nil {
			result.Failed += len(ids)
			errs = append(errs, s.markFailed(ctx, ids, 1, fmt.Errorf("%w: %w", ErrInvalidItems, err)))
			continue
		}

		if err = s.upload(ctx, chunk); err != nil {
			result.Failed += len(ids)
			errs = append(errs, s.markFailed(ctx, ids, s.maxAttempts, err))
			continue
		}

		if err = s.staged.MarkUploaded(ctx, ids); err != nil {
			errs = append(errs, err)
			continue
		}
		result.Batches++
		result.Items += len(ids)
		s.metrics.AddItems(metrics.OutcomeUploaded, len(ids))
	}

	return result, errors.Join(errs...)
}

func (s *datasetService) markFailed(ctx context.Context, ids []int64, maxAttempts int, cause error) error {
	s.metrics.AddItems(metrics.OutcomeFailed, len(ids))
	s.logger.Err(cause).Str("func", "datasetService.markFailed").Int("items", len(ids)).Msg("staged items failed to upload")

	if err := s.staged.MarkFailed(ctx, ids, maxAttempts); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (s *datasetService) DeleteItems(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrNoItemIDs
	}

	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))
		if err := s.adapter.DeleteItems(ctx, ids[start:end]); err != nil {
			s.logger.Err(err).Str("func", "datasetService.DeleteItems").Int("deleted", start).Msg("error deleting items")
			return err
		}
	}

	s.logger.Info().Int("items", len(ids)).Msg("items deleted")
	return nil
}

func (s *datasetService) Stats(ctx context.Context) (map[models.StagedStatus]int, error) {
	counts, err := s.staged.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	s.metrics.SetPending(counts[models.StagedPending])
	return counts, nil
}

func (s *datasetService) Requeue(ctx context.Context) (int64, error) {
	n, err := s.staged.Requeue(ctx)
	if err != nil {
		return 0, err
	}

	s.refreshPending(ctx)
	return n, nil
}

func (s *datasetService) Purge(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPurgeAge, olderThan)
	}

	return s.staged.PurgeUploaded(ctx, s.now().Add(-olderThan))
}

func (s *datasetService) refreshPending(ctx context.Context) {
	counts, err := s.staged.CountByStatus(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "datasetService.refreshPending").Msg("error counting staged items")
		return
	}
	s.metrics.SetPending(counts[models.StagedPending])
}

var _ DatasetService = (*datasetService)(nil)
