package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUID v7 identifiers for dataset items.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUID v7 string. uuid.NewV7 only fails when the
// random source does, in which case a v4 value is returned instead.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUIDv7 reports whether s is a well-formed version 7 UUID.
func IsUUIDv7(s string) bool {
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	return id.Version() == 7
}
