// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote dataset API.
//
// The primary abstraction is [DatasetAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDatasetAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401), and
// [IsRetryable] to decide whether a failure is transient.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dataset-loader/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dataset_adapter_mock.go -package=mock

// DatasetAdapter defines communication with the dataset API.
// Implementations are responsible for serialisation, authentication headers,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type DatasetAdapter interface {
	// CreateDataset creates a dataset. Returns [ErrConflict] (wrapped) when a
	// dataset with the same name already exists.
	CreateDataset(ctx context.Context, req models.DatasetCreateRequest) error

	// GetDatasetByName looks a dataset up by its name. Returns [ErrNotFound]
	// (wrapped) when it does not exist.
	GetDatasetByName(ctx context.Context, name string) (models.Dataset, error)

	// GetDatasetByID fetches a dataset by id. Returns [ErrNotFound] (wrapped)
	// when it does not exist.
	GetDatasetByID(ctx context.Context, id string) (models.Dataset, error)

	// PutItems appends the items of batch to the referenced dataset in a
	// single request. The batch is validated before anything is sent; a
	// validation failure wraps [ErrInvalidBatch].
	PutItems(ctx context.Context, batch models.DatasetItemBatch) error

	// DeleteItems removes dataset items by id.
	DeleteItems(ctx context.Context, itemIDs []string) error
}
