package service

import "errors"

var (
	ErrInvalidItems    = errors.New("invalid dataset items")
	ErrUploadFailed    = errors.New("upload failed")
	ErrFlushFailed     = errors.New("flush failed")
	ErrStagingFailed   = errors.New("staging failed")
	ErrEnsureDataset   = errors.New("cannot ensure dataset")
	ErrMissingName     = errors.New("dataset name is required")
	ErrNoItemIDs       = errors.New("no item ids provided")
	ErrInvalidPurgeAge = errors.New("purge age must not be negative")
)
