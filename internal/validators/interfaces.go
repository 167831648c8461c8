// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of the dataset API's rules before anything is sent.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Implement Validator to encode domain-specific validation logic.
//  2. Inject Validator implementations into services or adapters.
//  3. Call Validate with context, value, and optional field names to enforce rules.
package validators

import "context"

// Validator checks a value before it reaches the dataset API. Passing field
// names restricts the check to those fields; an unsupported value type yields
// [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
