package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItem       = errors.New("invalid dataset item")
	ErrBatchTooLarge     = errors.New("batch exceeds the maximum number of items")
	ErrInvalidItemID     = errors.New("item id must be a UUID v7")
	ErrDuplicateItemID   = errors.New("item id is repeated in the batch")
	ErrInvalidSource     = errors.New("invalid item source")
	ErrEmptyData         = errors.New("data is required")
	ErrMissingTraceID    = errors.New("trace id is required for trace and span items")
	ErrMissingSpanID     = errors.New("span id is required for span items")
	ErrInvalidTraceLinks = errors.New("trace id and span id must be UUIDs")
)
