// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// DatasetItemBatch is the request body for appending items to a dataset in a
// single call. It references the target dataset either by name or by id and
// carries the items in the caller's insertion order.
//
// A DatasetItemBatch is immutable: it can only be obtained from
// [NewDatasetItemBatch], [NewDatasetItemBatchFromFields] or by decoding JSON,
// and its accessors return copies. The zero value is not a valid batch.
type DatasetItemBatch struct {
	ref   DatasetRef
	items []DatasetItem
}

// NewDatasetItemBatch builds a batch for ref holding a copy of items.
//
// The items are stored in their JSON form: numbers inside Data become
// [json.Number] and timestamps lose their monotonic reading, so the batch
// compares equal to the result of encoding and decoding it.
//
// Returns [ErrMissingDatasetReference] for a zero ref, [ErrMissingItems]
// for a nil items slice and [ErrInvalidItemData] when an item cannot be
// encoded as JSON. An empty, non-nil slice is accepted.
func NewDatasetItemBatch(ref DatasetRef, items []DatasetItem) (DatasetItemBatch, error) {
	if ref.IsZero() {
		return DatasetItemBatch{}, ErrMissingDatasetReference
	}
	if items == nil {
		return DatasetItemBatch{}, ErrMissingItems
	}

	normalized, err := normalizeItems(items)
	if err != nil {
		return DatasetItemBatch{}, err
	}

	return DatasetItemBatch{ref: ref, items: normalized}, nil
}

// NewDatasetItemBatchFromFields builds a batch from the two optional
// reference fields. Exactly one of datasetName and datasetID must be present.
//
// Returns [ErrAmbiguousDatasetReference] when both are present,
// [ErrMissingDatasetReference] when neither is, and [ErrMissingItems] when
// items is nil.
func NewDatasetItemBatchFromFields(datasetName, datasetID *string, items []DatasetItem) (DatasetItemBatch, error) {
	ref, err := NewDatasetRefFromFields(datasetName, datasetID)
	if err != nil {
		return DatasetItemBatch{}, err
	}

	return NewDatasetItemBatch(ref, items)
}

// Ref returns the dataset reference of the batch.
func (b DatasetItemBatch) Ref() DatasetRef {
	return b.ref
}

// DatasetName returns the dataset name and true when the batch targets a dataset by name.
func (b DatasetItemBatch) DatasetName() (string, bool) {
	return b.ref.Name()
}

// DatasetID returns the dataset id and true when the batch targets a dataset by id.
func (b DatasetItemBatch) DatasetID() (string, bool) {
	return b.ref.ID()
}

// Items returns a copy of the items in insertion order.
func (b DatasetItemBatch) Items() []DatasetItem {
	return cloneItems(b.items)
}

// Len returns the number of items in the batch.
func (b DatasetItemBatch) Len() int {
	return len(b.items)
}

// IsEmpty reports whether the batch holds no items.
func (b DatasetItemBatch) IsEmpty() bool {
	return len(b.items) == 0
}

// Validate re-checks the construction invariants. It is useful for values
// that did not come from a constructor (e.g. the zero DatasetItemBatch).
func (b DatasetItemBatch) Validate() error {
	if b.ref.IsZero() {
		return ErrMissingDatasetReference
	}
	if b.items == nil {
		return ErrMissingItems
	}
	return nil
}

// WithItems returns a new batch for the same dataset holding items.
func (b DatasetItemBatch) WithItems(items []DatasetItem) (DatasetItemBatch, error) {
	return NewDatasetItemBatch(b.ref, items)
}

// Chunk splits the batch into consecutive batches of at most size items each.
// Concatenating the chunks yields the original order. An empty batch yields
// no chunks.
func (b DatasetItemBatch) Chunk(size int) ([]DatasetItemBatch, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	chunks := make([]DatasetItemBatch, 0, (len(b.items)+size-1)/size)
	for start := 0; start < len(b.items); start += size {
		end := min(start+size, len(b.items))
		chunks = append(chunks, DatasetItemBatch{ref: b.ref, items: cloneItems(b.items[start:end])})
	}

	return chunks, nil
}

// datasetItemBatchJSON is the wire shape of DatasetItemBatch.
// Items is a pointer so that a missing or null "items" key can be told apart
// from an empty list.
type datasetItemBatchJSON struct {
	DatasetName *string        `json:"dataset_name,omitempty"`
	DatasetID   *string        `json:"dataset_id,omitempty"`
	Items       *[]DatasetItem `json:"items"`
}

// MarshalJSON implements json.Marshaler. Exactly one of "dataset_name" and
// "dataset_id" is written; "items" is always written.
func (b DatasetItemBatch) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	items := b.items
	wire := datasetItemBatchJSON{Items: &items}
	switch b.ref.Kind() {
	case DatasetRefByName:
		wire.DatasetName = &b.ref.value
	case DatasetRefByID:
		wire.DatasetID = &b.ref.value
	}

	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler and applies the same checks as
// [NewDatasetItemBatchFromFields].
func (b *DatasetItemBatch) UnmarshalJSON(data []byte) error {
	var wire datasetItemBatchJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var items []DatasetItem
	if wire.Items != nil {
		items = *wire.Items
		if items == nil {
			items = []DatasetItem{}
		}
	}

	batch, err := NewDatasetItemBatchFromFields(wire.DatasetName, wire.DatasetID, items)
	if err != nil {
		return err
	}

	*b = batch
	return nil
}

// normalizeItems returns a detached copy of items as they would look after a
// JSON round trip.
func normalizeItems(items []DatasetItem) ([]DatasetItem, error) {
	if len(items) == 0 {
		return []DatasetItem{}, nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidItemData, err)
	}

	var out []DatasetItem
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidItemData, err)
	}
	return out, nil
}

func cloneItems(items []DatasetItem) []DatasetItem {
	if items == nil {
		return nil
	}

	out := make([]DatasetItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
