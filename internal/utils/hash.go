package utils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ContentHash returns the hex-encoded BLAKE2b-256 digest of the JSON
// encoding of v.
//
// encoding/json writes map keys in sorted order, so two values holding the
// same data produce the same digest regardless of map iteration order.
//
// Example usage:
//
//	hash, err := utils.ContentHash(item.ContentFields())
func ContentHash(v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal value for hashing: %w", err)
	}

	return HashBytes(payload), nil
}

// HashBytes returns the hex-encoded BLAKE2b-256 digest of data.
func HashBytes(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
