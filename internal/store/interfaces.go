// Package store persists dataset items locally until they are uploaded.
//
// The staging store is an outbox: items are staged with their dataset
// reference and content hash, read back in staging order by the flush, and
// marked uploaded or failed. SQLite is the default backend; a postgres://
// DSN selects Postgres.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dataset-loader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StagedItemRepository is the staging outbox.
type StagedItemRepository interface {
	// Stage inserts items as pending. An item whose (ref, content hash) is
	// already staged is skipped. Returns the number of newly staged items.
	Stage(ctx context.Context, items []models.StagedItem) (int, error)

	// Pending returns up to limit pending items in staging order.
	Pending(ctx context.Context, limit int) ([]models.StagedItem, error)

	// MarkUploaded moves items to the uploaded state.
	MarkUploaded(ctx context.Context, ids []int64) error

	// MarkFailed counts a failed attempt for each item. Items that reach
	// maxAttempts move to the failed state; the rest stay pending.
	MarkFailed(ctx context.Context, ids []int64, maxAttempts int) error

	// Requeue moves failed items back to pending with their attempts reset.
	Requeue(ctx context.Context) (int64, error)

	// CountByStatus returns the number of items in each state.
	CountByStatus(ctx context.Context) (map[models.StagedStatus]int, error)

	// PurgeUploaded deletes uploaded items last updated before the cutoff.
	PurgeUploaded(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)
