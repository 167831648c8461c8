// Package utils provides general-purpose helpers used across the loader:
// UUID v7 generation and checks, content hashing for deduplication, the
// shared resty HTTP client and JSON response writing.
package utils
