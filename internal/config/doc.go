// Package config provides configuration loading, merging, and validation
// facilities for the loader.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (path taken from CONFIG or -c / -config)
//  2. Environment variables
//  3. Command-line flags
//
// Fields still empty after merging receive the Default* values, and the
// result is validated. The main entry point is [GetStructuredConfig].
package config
