// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dataset-loader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DatasetService is the loader's use-case layer. It turns raw items into
// valid batches, uploads them to the dataset API and manages the local
// staging outbox.
type DatasetService interface {
	// EnsureDataset returns the dataset called name, creating it with
	// description when it does not exist yet.
	EnsureDataset(ctx context.Context, name, description string) (models.Dataset, error)

	// Insert uploads items to the referenced dataset right away. Items
	// without an id get a UUID v7, duplicate contents are dropped unless
	// deduplication is disabled, and the rest is sent in order in batches
	// of the configured size. Insert stops at the first batch that fails
	// for good; the returned result counts what was accepted before that.
	Insert(ctx context.Context, ref models.DatasetRef, items []models.DatasetItem) (models.UploadResult, error)

	// Stage stores items in the local outbox for a later Flush. Returns the
	// number of newly staged items.
	Stage(ctx context.Context, ref models.DatasetRef, items []models.DatasetItem) (int, error)

	// Flush uploads pending staged items once and records the outcome of
	// every item in the outbox.
	Flush(ctx context.Context) (models.UploadResult, error)

	// DeleteItems removes items from the dataset API by id.
	DeleteItems(ctx context.Context, ids []string) error

	// Stats returns the number of staged items per status.
	Stats(ctx context.Context) (map[models.StagedStatus]int, error)

	// Requeue gives failed staged items another round of attempts.
	Requeue(ctx context.Context) (int64, error)

	// Purge deletes uploaded staged items older than olderThan.
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
}

// FlushJob periodically flushes the staging outbox.
type FlushJob interface {
	// Start launches the background flush goroutine. It flushes every
	// interval, defaulting to 30 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run flushes on the configured interval until ctx is done. It blocks
	// and always returns nil, so the job can run as a worker.
	Run(ctx context.Context) error
}
