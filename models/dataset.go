package models

import "time"

// Dataset is a named collection of items managed by the dataset API.
type Dataset struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Read-only fields
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
	CreatedBy     string     `json:"created_by,omitempty"`
	LastUpdatedBy string     `json:"last_updated_by,omitempty"`
}

// Ref returns a reference to the dataset, preferring the id when known.
func (d Dataset) Ref() DatasetRef {
	if d.ID != "" {
		return ByID(d.ID)
	}
	return ByName(d.Name)
}

// DatasetCreateRequest is the body of the create-dataset call.
type DatasetCreateRequest struct {
	// ID is optional; the server generates one when empty.
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DatasetRetrieveRequest looks a dataset up by its name.
type DatasetRetrieveRequest struct {
	DatasetName string `json:"dataset_name"`
}

// DatasetItemsDeleteRequest removes items by id.
type DatasetItemsDeleteRequest struct {
	ItemIDs []string `json:"item_ids"`
}
