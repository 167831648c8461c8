package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/adapter"
	"github.com/MKhiriev/go-dataset-loader/internal/metrics"
	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/sethvargo/go-retry"
)

const maxRetryDelay = 30 * time.Second

type preparedItem struct {
	item models.DatasetItem
	hash string
}

type preparedItems []preparedItem

func (p preparedItems) items() []models.DatasetItem {
	items := make([]models.DatasetItem, 0, len(p))
	for _, it := range p {
		items = append(items, it.item)
	}
	return items
}

// prepare copies items, assigns missing ids and computes content hashes.
// Unless deduplication is disabled, an item whose content was already seen
// is dropped; the first occurrence wins and order is kept.
func (s *datasetService) prepare(items []models.DatasetItem) (preparedItems, int, error) {
	prepared := make(preparedItems, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	duplicates := 0

	for i, item := range items {
		item = item.Clone()
		if item.ID == "" {
			item.ID = s.ids.Generate()
		}

		if s.skipDedup {
			prepared = append(prepared, preparedItem{item: item, hash: utils.HashBytes([]byte(item.ID))})
			continue
		}

		hash, err := utils.ContentHash(item.ContentFields())
		if err != nil {
			return nil, 0, fmt.Errorf("%w: item %d: %w", ErrInvalidItems, i, err)
		}
		if _, ok := seen[hash]; ok {
			duplicates++
			continue
		}
		seen[hash] = struct{}{}
		prepared = append(prepared, preparedItem{item: item, hash: hash})
	}

	return prepared, duplicates, nil
}

// chunk validates the items as a whole and splits them into batches of the
// configured size.
func (s *datasetService) chunk(ctx context.Context, ref models.DatasetRef, items []models.DatasetItem) ([]models.DatasetItemBatch, error) {
	batch, err := models.NewDatasetItemBatch(ref, items)
	if err != nil {
		return nil, err
	}

	if err = s.validator.Validate(ctx, batch); err != nil {
		s.logger.Err(err).Str("func", "datasetService.chunk").Str("dataset", ref.String()).Msg("items rejected")
		return nil, fmt.Errorf("%w: %w", ErrInvalidItems, err)
	}

	return batch.Chunk(s.batchSize)
}

// upload sends one batch, retrying transient failures with exponential
// backoff.
func (s *datasetService) upload(ctx context.Context, batch models.DatasetItemBatch) error {
	backoff := retry.NewExponential(max(s.retryBackoff, time.Millisecond))
	backoff = retry.WithCappedDuration(maxRetryDelay, backoff)
	backoff = retry.WithMaxRetries(s.retryAttempts, backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		start := time.Now()

		err := s.adapter.PutItems(ctx, batch)
		took := time.Since(start)

		switch {
		case err == nil:
			s.metrics.ObserveBatch(metrics.OutcomeSuccess, took)
			return nil
		case adapter.IsRetryable(err):
			s.metrics.ObserveBatch(metrics.OutcomeRetry, took)
			s.logger.Warn().
				Err(err).
				Str("dataset", batch.Ref().String()).
				Int("attempt", attempt).
				Msg("transient upload failure")
			return retry.RetryableError(err)
		default:
			s.metrics.ObserveBatch(metrics.OutcomeFailure, took)
			return err
		}
	})
}

// stagedGroup holds the staged rows of one dataset in staging order.
type stagedGroup struct {
	ref  models.DatasetRef
	rows []models.StagedItem
}

func (g stagedGroup) items() []models.DatasetItem {
	items := make([]models.DatasetItem, 0, len(g.rows))
	for _, row := range g.rows {
		items = append(items, row.Item)
	}
	return items
}

func (g stagedGroup) ids() []int64 {
	ids := make([]int64, 0, len(g.rows))
	for _, row := range g.rows {
		ids = append(ids, row.ID)
	}
	return ids
}

// groupByRef splits rows by dataset. Groups come in the order their first
// row appears.
func groupByRef(rows []models.StagedItem) []stagedGroup {
	var groups []stagedGroup
	index := make(map[string]int)

	for _, row := range rows {
		key := row.Ref.String()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, stagedGroup{ref: row.Ref})
		}
		groups[i].rows = append(groups[i].rows, row)
	}

	return groups
}
