// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the loader's command-line runtime.
//
// It reads dataset items from JSONL input, dispatches the positional command
// to the dataset service, and renders a short summary of the outcome. The
// serve command runs the flush job and the metrics server side by side until
// the context is cancelled.
package client
