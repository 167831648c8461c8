// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DatasetRefKind tells which identification mechanism a [DatasetRef] carries.
type DatasetRefKind int

const (
	// DatasetRefNone is the kind of the zero DatasetRef: no dataset is referenced.
	DatasetRefNone DatasetRefKind = iota

	// DatasetRefByName references a dataset by its unique name.
	DatasetRefByName

	// DatasetRefByID references a dataset by its server-assigned identifier.
	DatasetRefByID
)

// String returns the lower-case label of the kind ("none", "name", "id").
// The label is also the value persisted in the staging store.
func (k DatasetRefKind) String() string {
	switch k {
	case DatasetRefByName:
		return "name"
	case DatasetRefByID:
		return "id"
	default:
		return "none"
	}
}

// ParseDatasetRefKind is the inverse of [DatasetRefKind.String].
func ParseDatasetRefKind(s string) DatasetRefKind {
	switch s {
	case "name":
		return DatasetRefByName
	case "id":
		return DatasetRefByID
	default:
		return DatasetRefNone
	}
}

// DatasetRef identifies the target dataset of a batch either by name or by id,
// never both. The zero value references nothing.
//
// Use [ByName] or [ByID] to build a reference; fields are unexported so a
// reference with both mechanisms set cannot be expressed.
type DatasetRef struct {
	kind  DatasetRefKind
	value string
}

// ByName returns a reference to the dataset with the given name. The name is
// kept as given; an empty or blank name yields the zero DatasetRef.
func ByName(name string) DatasetRef {
	if strings.TrimSpace(name) == "" {
		return DatasetRef{}
	}
	return DatasetRef{kind: DatasetRefByName, value: name}
}

// ByID returns a reference to the dataset with the given id. The id is kept
// as given; an empty or blank id yields the zero DatasetRef.
func ByID(id string) DatasetRef {
	if strings.TrimSpace(id) == "" {
		return DatasetRef{}
	}
	return DatasetRef{kind: DatasetRefByID, value: id}
}

// NewDatasetRefFromFields builds a reference from two independently optional
// fields, the shape used on the wire and by command-line flags. A nil pointer
// and a pointer to an empty string are both treated as absent.
//
// Returns [ErrAmbiguousDatasetReference] when both are present and
// [ErrMissingDatasetReference] when neither is.
func NewDatasetRefFromFields(name, id *string) (DatasetRef, error) {
	byName := ByName(deref(name))
	byID := ByID(deref(id))

	switch {
	case !byName.IsZero() && !byID.IsZero():
		return DatasetRef{}, ErrAmbiguousDatasetReference
	case !byName.IsZero():
		return byName, nil
	case !byID.IsZero():
		return byID, nil
	default:
		return DatasetRef{}, ErrMissingDatasetReference
	}
}

// Kind returns which mechanism the reference uses.
func (r DatasetRef) Kind() DatasetRefKind {
	return r.kind
}

// Value returns the name or the id, depending on Kind.
func (r DatasetRef) Value() string {
	return r.value
}

// IsZero reports whether the reference is empty.
func (r DatasetRef) IsZero() bool {
	return r.kind == DatasetRefNone
}

// Name returns the dataset name and true when the reference is by name.
func (r DatasetRef) Name() (string, bool) {
	if r.kind != DatasetRefByName {
		return "", false
	}
	return r.value, true
}

// ID returns the dataset id and true when the reference is by id.
func (r DatasetRef) ID() (string, bool) {
	if r.kind != DatasetRefByID {
		return "", false
	}
	return r.value, true
}

// String renders the reference as "name:<value>" or "id:<value>".
func (r DatasetRef) String() string {
	if r.IsZero() {
		return "none"
	}
	return r.kind.String() + ":" + r.value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
