package models

import "time"

// StagedStatus is the lifecycle state of an item waiting in the local staging store.
type StagedStatus string

const (
	// StagedPending items are waiting for the next flush.
	StagedPending StagedStatus = "pending"

	// StagedUploaded items were accepted by the dataset API.
	StagedUploaded StagedStatus = "uploaded"

	// StagedFailed items exhausted their upload attempts.
	StagedFailed StagedStatus = "failed"
)

// StagedItem is a dataset item persisted locally until it is uploaded.
type StagedItem struct {
	// ID is the staging sequence number. Pending items are uploaded in
	// ascending ID order, which is the order they were staged in.
	ID int64

	// Ref is the dataset the item belongs to.
	Ref DatasetRef

	// Item is the dataset item itself.
	Item DatasetItem

	// ContentHash identifies the item content within its dataset.
	ContentHash string

	Status    StagedStatus
	Attempts  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UploadResult summarises an insert or a flush.
type UploadResult struct {
	// Batches is the number of requests accepted by the API.
	Batches int `json:"batches"`

	// Items is the number of items accepted by the API.
	Items int `json:"items"`

	// Duplicates is the number of items dropped because their content was
	// already present in the same batch or staging store.
	Duplicates int `json:"duplicates"`

	// Failed is the number of items whose upload failed.
	Failed int `json:"failed"`
}

// Add accumulates other into r.
func (r *UploadResult) Add(other UploadResult) {
	r.Batches += other.Batches
	r.Items += other.Items
	r.Duplicates += other.Duplicates
	r.Failed += other.Failed
}
