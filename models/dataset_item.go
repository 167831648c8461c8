package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// ItemSource is the origin of a dataset item as understood by the dataset API.
type ItemSource string

const (
	SourceManual ItemSource = "manual"
	SourceTrace  ItemSource = "trace"
	SourceSpan   ItemSource = "span"
	SourceSDK    ItemSource = "sdk"
)

// AllowedItemSources is the exhaustive set of sources accepted by the API.
var AllowedItemSources = []ItemSource{SourceManual, SourceTrace, SourceSpan, SourceSDK}

// DatasetItem is a single record of a dataset.
type DatasetItem struct {
	// ID is a UUID v7. When empty on upload the loader assigns one.
	ID string `json:"id,omitempty"`

	// TraceID links the item to the trace it was built from.
	// Required when Source is SourceTrace or SourceSpan.
	TraceID string `json:"trace_id,omitempty"`

	// SpanID links the item to a span. Required when Source is SourceSpan.
	SpanID string `json:"span_id,omitempty"`

	// Source tells where the item came from.
	Source ItemSource `json:"source"`

	// Data is the arbitrary JSON object stored in the dataset.
	Data map[string]any `json:"data"`

	// Read-only fields, filled by the server.
	DatasetID     string     `json:"dataset_id,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	LastUpdatedBy string     `json:"last_updated_by,omitempty"`
}

// Clone returns a deep copy of the item. Nested objects and arrays inside Data
// and the timestamps can be modified without affecting the original.
func (i DatasetItem) Clone() DatasetItem {
	if i.Data != nil {
		i.Data = cloneObject(i.Data)
	}
	i.CreatedAt = cloneTime(i.CreatedAt)
	i.LastUpdatedAt = cloneTime(i.LastUpdatedAt)
	return i
}

// UnmarshalJSON implements json.Unmarshaler. Numbers inside Data are kept as
// [json.Number] so integers above 2^53 survive a decode and encode cycle.
func (i *DatasetItem) UnmarshalJSON(b []byte) error {
	type plain DatasetItem

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var item plain
	if err := dec.Decode(&item); err != nil {
		return err
	}

	*i = DatasetItem(item)
	return nil
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		return cloneObject(v)
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// HashedFields is the subset of an item that defines its content. Two items
// with equal HashedFields are duplicates regardless of their ids.
type HashedFields struct {
	TraceID string         `json:"trace_id,omitempty"`
	SpanID  string         `json:"span_id,omitempty"`
	Source  ItemSource     `json:"source"`
	Data    map[string]any `json:"data"`
}

// ContentFields returns the fields used for content hashing.
func (i DatasetItem) ContentFields() HashedFields {
	return HashedFields{
		TraceID: i.TraceID,
		SpanID:  i.SpanID,
		Source:  i.Source,
		Data:    i.Data,
	}
}
