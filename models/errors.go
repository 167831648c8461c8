package models

import (
	"errors"
	"fmt"
)

// ErrInvalidRequestShape is the umbrella error for a batch that cannot be
// constructed. Every shape error below matches it with [errors.Is].
var ErrInvalidRequestShape = errors.New("invalid request shape")

var (
	// ErrMissingDatasetReference means neither a dataset name nor a dataset id was given.
	ErrMissingDatasetReference = fmt.Errorf("%w: missing dataset reference: dataset name or dataset id must be provided", ErrInvalidRequestShape)

	// ErrAmbiguousDatasetReference means both a dataset name and a dataset id were given.
	ErrAmbiguousDatasetReference = fmt.Errorf("%w: ambiguous dataset reference: only one of dataset name or dataset id may be provided", ErrInvalidRequestShape)

	// ErrMissingItems means the items sequence is absent. A present but empty
	// sequence is valid.
	ErrMissingItems = fmt.Errorf("%w: missing items", ErrInvalidRequestShape)

	// ErrInvalidItemData means an item holds a value that has no JSON encoding.
	ErrInvalidItemData = fmt.Errorf("%w: item data is not JSON-encodable", ErrInvalidRequestShape)
)

// ErrInvalidChunkSize is returned by [DatasetItemBatch.Chunk] for a non-positive size.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")
