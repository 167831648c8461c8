// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-dataset-loader/internal/adapter"
	"github.com/MKhiriev/go-dataset-loader/internal/config"
	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/metrics"
	"github.com/MKhiriev/go-dataset-loader/internal/mock"
	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/internal/validators"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Adapter: config.Adapter{RetryAttempts: 2, RetryBackoff: time.Millisecond},
		Workers: config.Workers{BatchSize: 2, FlushLimit: 100, MaxAttempts: 3},
	}
}

// newTestDatasetSvc: хелпер для создания datasetService с моками
func newTestDatasetSvc(
	t *testing.T,
	cfg config.StructuredConfig,
) (
	*datasetService,
	*mock.MockDatasetAdapter,
	*mock.MockStagedItemRepository,
	*metrics.UploaderMetrics,
) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockDatasetAdapter(ctrl)
	mockRepo := mock.NewMockStagedItemRepository(ctrl)
	m := metrics.NewUploaderMetrics(prometheus.NewRegistry())

	svc := NewDatasetService(mockAdapter, mockRepo, validators.NewDatasetItemBatchValidator(0), m, cfg, logger.Nop()).(*datasetService)
	return svc, mockAdapter, mockRepo, m
}

func manualItem(input string) models.DatasetItem {
	return models.DatasetItem{Source: models.SourceManual, Data: map[string]any{"input": input}}
}

func manualItems(inputs ...string) []models.DatasetItem {
	items := make([]models.DatasetItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, manualItem(in))
	}
	return items
}

func inputsOf(batch models.DatasetItemBatch) []string {
	var out []string
	for _, item := range batch.Items() {
		out = append(out, fmt.Sprint(item.Data["input"]))
	}
	return out
}

// ── EnsureDataset ────────────────────────────────────────────────────────────

func TestDatasetService_EnsureDataset_Existing(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	existing := models.Dataset{ID: "ds-1", Name: "evals"}
	mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(existing, nil)

	got, err := svc.EnsureDataset(ctx, "evals", "ignored")
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestDatasetService_EnsureDataset_KeepsNameAsGiven(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	// имя с пробелами ищется как есть
	padded := models.Dataset{ID: "ds-2", Name: " evals "}
	mockAdapter.EXPECT().GetDatasetByName(ctx, " evals ").Return(padded, nil)

	got, err := svc.EnsureDataset(ctx, " evals ", "")
	require.NoError(t, err)
	assert.Equal(t, padded, got)
}

func TestDatasetService_EnsureDataset_CreatesMissing(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	created := models.Dataset{ID: "ds-1", Name: "evals", Description: "regression set"}
	gomock.InOrder(
		mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(models.Dataset{}, fmt.Errorf("%w: missing", adapter.ErrNotFound)),
		mockAdapter.EXPECT().CreateDataset(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.DatasetCreateRequest) error {
				assert.Equal(t, "evals", req.Name)
				assert.Equal(t, "regression set", req.Description)
				assert.True(t, utils.IsUUIDv7(req.ID))
				return nil
			}),
		mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(created, nil),
	)

	got, err := svc.EnsureDataset(ctx, "evals", "regression set")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDatasetService_EnsureDataset_ConflictIsTolerated(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(models.Dataset{}, adapter.ErrNotFound),
		mockAdapter.EXPECT().CreateDataset(ctx, gomock.Any()).Return(fmt.Errorf("%w: exists", adapter.ErrConflict)),
		mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(models.Dataset{ID: "ds-1", Name: "evals"}, nil),
	)

	got, err := svc.EnsureDataset(ctx, "evals", "")
	require.NoError(t, err)
	assert.Equal(t, "ds-1", got.ID)
}

func TestDatasetService_EnsureDataset_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		svc, _, _, _ := newTestDatasetSvc(t, testConfig())
		_, err := svc.EnsureDataset(ctx, "  ", "")
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("lookup fails", func(t *testing.T) {
		svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
		mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(models.Dataset{}, adapter.ErrUnauthorized)

		_, err := svc.EnsureDataset(ctx, "evals", "")
		assert.ErrorIs(t, err, ErrEnsureDataset)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	})

	t.Run("create fails", func(t *testing.T) {
		svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
		mockAdapter.EXPECT().GetDatasetByName(ctx, "evals").Return(models.Dataset{}, adapter.ErrNotFound)
		mockAdapter.EXPECT().CreateDataset(ctx, gomock.Any()).Return(adapter.ErrForbidden)

		_, err := svc.EnsureDataset(ctx, "evals", "")
		assert.ErrorIs(t, err, adapter.ErrForbidden)
	})
}

// ── Insert ───────────────────────────────────────────────────────────────────

func TestDatasetService_Insert_ChunksInOrder(t *testing.T) {
	svc, mockAdapter, _, m := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()
	ref := models.ByName("evals")

	var sent [][]string
	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch models.DatasetItemBatch) error {
			assert.Equal(t, ref, batch.Ref())
			for _, item := range batch.Items() {
				assert.True(t, utils.IsUUIDv7(item.ID), "ids must be assigned before upload")
			}
			sent = append(sent, inputsOf(batch))
			return nil
		}).Times(3)

	result, err := svc.Insert(ctx, ref, manualItems("a", "b", "c", "d", "e"))
	require.NoError(t, err)

	assert.Equal(t, models.UploadResult{Batches: 3, Items: 5}, result)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, sent)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Items.WithLabelValues(metrics.OutcomeUploaded)))
}

func TestDatasetService_Insert_KeepsProvidedIDs(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	id := utils.NewUUIDGenerator().Generate()
	item := manualItem("a")
	item.ID = id

	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch models.DatasetItemBatch) error {
			assert.Equal(t, id, batch.Items()[0].ID)
			return nil
		})

	_, err := svc.Insert(ctx, models.ByID("ds-1"), []models.DatasetItem{item})
	require.NoError(t, err)
}

func TestDatasetService_Insert_Deduplicates(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	var sent []string
	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch models.DatasetItemBatch) error {
			sent = append(sent, inputsOf(batch)...)
			return nil
		}).Times(2)

	result, err := svc.Insert(ctx, models.ByName("evals"), manualItems("a", "b", "a", "c", "b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, sent, "first occurrence wins, order kept")
	assert.Equal(t, 3, result.Items)
	assert.Equal(t, 2, result.Duplicates)
}

func TestDatasetService_Insert_SkipDeduplication(t *testing.T) {
	cfg := testConfig()
	cfg.Target.SkipDeduplication = true
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, cfg)

	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := svc.Insert(context.Background(), models.ByName("evals"), manualItems("a", "a", "a"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Items)
	assert.Zero(t, result.Duplicates)
}

func TestDatasetService_Insert_RetriesTransientFailures(t *testing.T) {
	svc, mockAdapter, _, m := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: busy", adapter.ErrServiceUnavailable)),
		mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: reset", adapter.ErrTransport)),
		mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(nil),
	)

	result, err := svc.Insert(ctx, models.ByName("evals"), manualItems("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Items)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Batches.WithLabelValues(metrics.OutcomeRetry)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Batches.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestDatasetService_Insert_GivesUpAfterRetries(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())

	// one attempt plus two retries
	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(adapter.ErrTooManyRequests).Times(3)

	result, err := svc.Insert(context.Background(), models.ByName("evals"), manualItems("a", "b", "c"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, adapter.ErrTooManyRequests)
	assert.Equal(t, models.UploadResult{Failed: 3}, result)
}

func TestDatasetService_Insert_StopsAtFirstPermanentFailure(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())

	gomock.InOrder(
		mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(nil),
		mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: bad", adapter.ErrBadRequest)),
	)

	result, err := svc.Insert(context.Background(), models.ByName("evals"), manualItems("a", "b", "c", "d", "e"))
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, models.UploadResult{Batches: 1, Items: 2, Failed: 3}, result)
}

func TestDatasetService_Insert_InvalidItemsSendNothing(t *testing.T) {
	svc, _, _, _ := newTestDatasetSvc(t, testConfig())

	items := manualItems("a", "b")
	items[1].Source = "unknown"

	_, err := svc.Insert(context.Background(), models.ByName("evals"), items)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidItems)
	assert.ErrorIs(t, err, validators.ErrInvalidSource)
}

func TestDatasetService_Insert_MissingReference(t *testing.T) {
	svc, _, _, _ := newTestDatasetSvc(t, testConfig())

	_, err := svc.Insert(context.Background(), models.DatasetRef{}, manualItems("a"))
	assert.ErrorIs(t, err, models.ErrMissingDatasetReference)
}

func TestDatasetService_Insert_EmptyIsNoop(t *testing.T) {
	svc, _, _, _ := newTestDatasetSvc(t, testConfig())

	result, err := svc.Insert(context.Background(), models.ByName("evals"), nil)
	require.NoError(t, err)
	assert.Zero(t, result)
}

func TestDatasetService_Insert_DoesNotMutateInput(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).Return(nil)

	items := manualItems("a")
	_, err := svc.Insert(context.Background(), models.ByName("evals"), items)
	require.NoError(t, err)
	assert.Empty(t, items[0].ID)
}

// ── Stage ────────────────────────────────────────────────────────────────────

func TestDatasetService_Stage(t *testing.T) {
	svc, _, mockRepo, m := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()
	ref := models.ByName("evals")

	mockRepo.EXPECT().Stage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rows []models.StagedItem) (int, error) {
			require.Len(t, rows, 2)
			for _, row := range rows {
				assert.Equal(t, ref, row.Ref)
				assert.NotEmpty(t, row.ContentHash)
				assert.True(t, utils.IsUUIDv7(row.Item.ID))
			}
			assert.NotEqual(t, rows[0].ContentHash, rows[1].ContentHash)
			// pretend "b" was already staged earlier
			return 1, nil
		})
	mockRepo.EXPECT().CountByStatus(ctx).Return(map[models.StagedStatus]int{models.StagedPending: 7}, nil)

	staged, err := svc.Stage(ctx, ref, manualItems("a", "b", "a"))
	require.NoError(t, err)
	assert.Equal(t, 1, staged)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Items.WithLabelValues(metrics.OutcomeDuplicate)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Pending))
}

func TestDatasetService_Stage_SameContentSameHash(t *testing.T) {
	svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	var hashes []string
	mockRepo.EXPECT().Stage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rows []models.StagedItem) (int, error) {
			hashes = append(hashes, rows[0].ContentHash)
			return 1, nil
		}).Times(2)
	mockRepo.EXPECT().CountByStatus(ctx).Return(nil, nil).AnyTimes()

	_, err := svc.Stage(ctx, models.ByName("evals"), manualItems("a"))
	require.NoError(t, err)
	_, err = svc.Stage(ctx, models.ByName("evals"), manualItems("a"))
	require.NoError(t, err)

	assert.Equal(t, hashes[0], hashes[1], "hash must not depend on the generated id")
}

func TestDatasetService_Stage_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid items are not staged", func(t *testing.T) {
		svc, _, _, _ := newTestDatasetSvc(t, testConfig())
		items := manualItems("a")
		items[0].Data = nil

		_, err := svc.Stage(ctx, models.ByName("evals"), items)
		assert.ErrorIs(t, err, ErrInvalidItems)
	})

	t.Run("repository fails", func(t *testing.T) {
		svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
		mockRepo.EXPECT().Stage(ctx, gomock.Any()).Return(0, errors.New("disk full"))

		_, err := svc.Stage(ctx, models.ByName("evals"), manualItems("a"))
		assert.ErrorIs(t, err, ErrStagingFailed)
	})
}

// ── Flush ────────────────────────────────────────────────────────────────────

func stagedRow(id int64, ref models.DatasetRef, input string) models.StagedItem {
	item := manualItem(input)
	item.ID = utils.NewUUIDGenerator().Generate()
	return models.StagedItem{ID: id, Ref: ref, Item: item, Status: models.StagedPending}
}

func TestDatasetService_Flush_GroupsByDataset(t *testing.T) {
	svc, mockAdapter, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	evals, smoke := models.ByName("evals"), models.ByID("ds-2")
	pending := []models.StagedItem{
		stagedRow(1, evals, "a"),
		stagedRow(2, smoke, "x"),
		stagedRow(3, evals, "b"),
		stagedRow(4, evals, "c"),
	}

	var sent []string
	mockRepo.EXPECT().Pending(ctx, 100).Return(pending, nil)
	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch models.DatasetItemBatch) error {
			sent = append(sent, batch.Ref().String()+"="+fmt.Sprint(inputsOf(batch)))
			return nil
		}).Times(3)
	gomock.InOrder(
		mockRepo.EXPECT().MarkUploaded(ctx, []int64{1, 3}).Return(nil),
		mockRepo.EXPECT().MarkUploaded(ctx, []int64{4}).Return(nil),
		mockRepo.EXPECT().MarkUploaded(ctx, []int64{2}).Return(nil),
	)
	mockRepo.EXPECT().CountByStatus(ctx).Return(map[models.StagedStatus]int{models.StagedUploaded: 4}, nil)

	result, err := svc.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UploadResult{Batches: 3, Items: 4}, result)
	assert.Equal(t, []string{"name:evals=[a b]", "name:evals=[c]", "id:ds-2=[x]"}, sent)
}

func TestDatasetService_Flush_MarksFailures(t *testing.T) {
	svc, mockAdapter, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	evals, missing := models.ByName("evals"), models.ByID("gone")
	pending := []models.StagedItem{
		stagedRow(1, missing, "a"),
		stagedRow(2, evals, "b"),
	}

	mockRepo.EXPECT().Pending(ctx, 100).Return(pending, nil)
	mockAdapter.EXPECT().PutItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch models.DatasetItemBatch) error {
			if batch.Ref() == missing {
				return adapter.ErrNotFound
			}
			return nil
		}).Times(2)
	mockRepo.EXPECT().MarkFailed(ctx, []int64{1}, 3).Return(nil)
	mockRepo.EXPECT().MarkUploaded(ctx, []int64{2}).Return(nil)
	mockRepo.EXPECT().CountByStatus(ctx).Return(map[models.StagedStatus]int{models.StagedPending: 1}, nil)

	result, err := svc.Flush(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFlushFailed)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, models.UploadResult{Batches: 1, Items: 1, Failed: 1}, result)
}

func TestDatasetService_Flush_InvalidRowsFailImmediately(t *testing.T) {
	svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	row := stagedRow(1, models.ByName("evals"), "a")
	row.Item.Source = "bogus"

	mockRepo.EXPECT().Pending(ctx, 100).Return([]models.StagedItem{row}, nil)
	mockRepo.EXPECT().MarkFailed(ctx, []int64{1}, 1).Return(nil)
	mockRepo.EXPECT().CountByStatus(ctx).Return(nil, nil)

	result, err := svc.Flush(ctx)
	assert.ErrorIs(t, err, ErrInvalidItems)
	assert.Equal(t, 1, result.Failed)
}

func TestDatasetService_Flush_NothingPending(t *testing.T) {
	svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	mockRepo.EXPECT().Pending(ctx, 100).Return(nil, nil)

	result, err := svc.Flush(ctx)
	require.NoError(t, err)
	assert.Zero(t, result)
}

func TestDatasetService_Flush_PendingFails(t *testing.T) {
	svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	mockRepo.EXPECT().Pending(ctx, 100).Return(nil, errors.New("locked"))

	_, err := svc.Flush(ctx)
	assert.ErrorIs(t, err, ErrFlushFailed)
}

// ── DeleteItems / Stats / Requeue / Purge ────────────────────────────────────

func TestDatasetService_DeleteItems(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteItems(ctx, []string{"1", "2"}).Return(nil),
		mockAdapter.EXPECT().DeleteItems(ctx, []string{"3"}).Return(nil),
	)
	require.NoError(t, svc.DeleteItems(ctx, []string{"1", "2", "3"}))

	assert.ErrorIs(t, svc.DeleteItems(ctx, nil), ErrNoItemIDs)
}

func TestDatasetService_DeleteItems_StopsOnError(t *testing.T) {
	svc, mockAdapter, _, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteItems(ctx, []string{"1", "2"}).Return(adapter.ErrForbidden)

	assert.ErrorIs(t, svc.DeleteItems(ctx, []string{"1", "2", "3"}), adapter.ErrForbidden)
}

func TestDatasetService_Stats(t *testing.T) {
	svc, _, mockRepo, m := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	counts := map[models.StagedStatus]int{models.StagedPending: 2, models.StagedFailed: 1}
	mockRepo.EXPECT().CountByStatus(ctx).Return(counts, nil)

	got, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts, got)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Pending))
}

func TestDatasetService_Requeue(t *testing.T) {
	svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	mockRepo.EXPECT().Requeue(ctx).Return(int64(4), nil)
	mockRepo.EXPECT().CountByStatus(ctx).Return(map[models.StagedStatus]int{models.StagedPending: 4}, nil)

	n, err := svc.Requeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestDatasetService_Purge(t *testing.T) {
	svc, _, mockRepo, _ := newTestDatasetSvc(t, testConfig())
	ctx := context.Background()

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	mockRepo.EXPECT().PurgeUploaded(ctx, now.Add(-24*time.Hour)).Return(int64(10), nil)

	n, err := svc.Purge(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)

	_, err = svc.Purge(ctx, -time.Second)
	assert.ErrorIs(t, err, ErrInvalidPurgeAge)
}

// ── groupByRef ───────────────────────────────────────────────────────────────

func TestGroupByRef_FirstAppearanceOrder(t *testing.T) {
	a, b := models.ByName("a"), models.ByName("b")
	rows := []models.StagedItem{
		stagedRow(1, b, "1"), stagedRow(2, a, "2"), stagedRow(3, b, "3"),
	}

	groups := groupByRef(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, b, groups[0].ref)
	assert.Equal(t, []int64{1, 3}, groups[0].ids())
	assert.Equal(t, a, groups[1].ref)
	assert.Equal(t, []int64{2}, groups[1].ids())

	assert.Empty(t, groupByRef(nil))
}
