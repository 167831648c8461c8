package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/google/uuid"
)

// Field name constants used to specify which fields should be validated.
// Batch fields apply to DatasetItemBatch values; item fields apply to a
// single DatasetItem and, on a batch, to every item in it.
const (
	// FieldDatasetRef requires a dataset name or id.
	FieldDatasetRef = "dataset_ref"

	// FieldItems requires the items sequence to be present.
	FieldItems = "items"

	// FieldBatchSize caps the number of items per batch.
	FieldBatchSize = "batch_size"

	// FieldUniqueIDs forbids the same item id twice in one batch.
	FieldUniqueIDs = "unique_ids"

	// FieldItemID requires a set item id to be a UUID v7.
	FieldItemID = "id"

	// FieldSource requires one of models.AllowedItemSources.
	FieldSource = "source"

	// FieldData requires a non-empty data object.
	FieldData = "data"

	// FieldTraceLinks requires trace_id for trace items and trace_id plus
	// span_id for span items.
	FieldTraceLinks = "trace_links"
)

var (
	batchFields = []string{FieldDatasetRef, FieldItems, FieldBatchSize, FieldUniqueIDs}
	itemFields  = []string{FieldItemID, FieldSource, FieldData, FieldTraceLinks}
)

type DatasetItemBatchValidator struct {
	maxBatchSize int
}

// NewDatasetItemBatchValidator returns a Validator for dataset items and
// batches. A non-positive maxBatchSize disables the size check.
func NewDatasetItemBatchValidator(maxBatchSize int) Validator {
	return &DatasetItemBatchValidator{maxBatchSize: maxBatchSize}
}

func (v *DatasetItemBatchValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DatasetItemBatch:
		return v.validateBatch(ctx, value, fields...)
	case *models.DatasetItemBatch:
		return v.validateBatch(ctx, *value, fields...)

	case models.DatasetItem:
		return v.validateItem(ctx, value, fields...)
	case *models.DatasetItem:
		return v.validateItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DatasetItemBatchValidator) validateBatch(ctx context.Context, batch models.DatasetItemBatch, fields ...string) error {
	if len(fields) == 0 {
		fields = append(slices.Clone(batchFields), itemFields...)
	}

	var perItem []string
	for _, f := range fields {
		switch f {
		case FieldDatasetRef:
			if batch.Ref().IsZero() {
				return models.ErrMissingDatasetReference
			}
		case FieldItems:
			if errors.Is(batch.Validate(), models.ErrMissingItems) {
				return models.ErrMissingItems
			}
		case FieldBatchSize:
			if v.maxBatchSize > 0 && batch.Len() > v.maxBatchSize {
				return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, batch.Len(), v.maxBatchSize)
			}
		case FieldUniqueIDs:
			if err := uniqueIDs(batch.Items()); err != nil {
				return err
			}
		case FieldItemID, FieldSource, FieldData, FieldTraceLinks:
			perItem = append(perItem, f)
		default:
			return ErrUnknownField
		}
	}

	if len(perItem) == 0 {
		return nil
	}

	for i, item := range batch.Items() {
		if err := v.validateItem(ctx, item, perItem...); err != nil {
			return fmt.Errorf("%w: item %d: %w", ErrInvalidItem, i, err)
		}
	}

	return nil
}

func (v *DatasetItemBatchValidator) validateItem(ctx context.Context, item models.DatasetItem, fields ...string) error {
	if len(fields) == 0 {
		fields = itemFields
	}

	for _, f := range fields {
		switch f {
		case FieldItemID:
			if item.ID != "" && !utils.IsUUIDv7(item.ID) {
				return fmt.Errorf("%w: %q", ErrInvalidItemID, item.ID)
			}
		case FieldSource:
			if !slices.Contains(models.AllowedItemSources, item.Source) {
				return fmt.Errorf("%w: %q", ErrInvalidSource, item.Source)
			}
		case FieldData:
			if len(item.Data) == 0 {
				return ErrEmptyData
			}
		case FieldTraceLinks:
			if err := validateTraceLinks(item); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTraceLinks(item models.DatasetItem) error {
	switch item.Source {
	case models.SourceTrace:
		if item.TraceID == "" {
			return ErrMissingTraceID
		}
	case models.SourceSpan:
		if item.TraceID == "" {
			return ErrMissingTraceID
		}
		if item.SpanID == "" {
			return ErrMissingSpanID
		}
	}

	for _, id := range []string{item.TraceID, item.SpanID} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTraceLinks, id)
		}
	}

	return nil
}

func uniqueIDs(items []models.DatasetItem) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			continue
		}
		if first, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %q at items %d and %d", ErrDuplicateItemID, item.ID, first, i)
		}
		seen[item.ID] = i
	}
	return nil
}
