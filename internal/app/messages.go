// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the loader prints when a
// command fails.
//
// All Msg* constants are short sentences shown to the operator instead of the
// wrapped error chain. The full error still goes to the log.
package app

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-dataset-loader/internal/adapter"
	"github.com/MKhiriev/go-dataset-loader/internal/service"
	"github.com/MKhiriev/go-dataset-loader/models"
)

const (
	// MsgInvalidDataProvided is shown when the input items fail validation
	// (unknown source, empty data, bad dataset reference).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMissingDatasetReference is shown when neither a dataset name nor a
	// dataset id was configured.
	MsgMissingDatasetReference = "dataset name or dataset id must be provided"

	// MsgAmbiguousDatasetReference is shown when both a dataset name and a
	// dataset id were configured.
	MsgAmbiguousDatasetReference = "only one of dataset name or dataset id may be provided"

	// MsgUnauthorized is shown when the dataset API rejects the API key.
	MsgUnauthorized = "dataset api rejected the credentials, check the api key and workspace"

	// MsgDatasetNotFound is shown when the target dataset does not exist.
	MsgDatasetNotFound = "dataset not found"

	// MsgServiceUnavailable is shown when the dataset API cannot be reached
	// or keeps answering with transient errors.
	MsgServiceUnavailable = "no network or dataset api is unavailable"

	// MsgRateLimited is shown when retries were exhausted on 429 responses.
	MsgRateLimited = "dataset api rate limit exceeded, try again later"

	// MsgStagingFailed is shown when the local staging store cannot be used.
	MsgStagingFailed = "local staging store error"

	// MsgInternalError is the fallback for everything else.
	MsgInternalError = "internal error"
)

type errorMessage struct {
	err error
	msg string
}

// order matters: the first matching sentinel wins
var errorMessages = []errorMessage{
	{models.ErrMissingDatasetReference, MsgMissingDatasetReference},
	{models.ErrAmbiguousDatasetReference, MsgAmbiguousDatasetReference},
	{service.ErrInvalidItems, MsgInvalidDataProvided},
	{models.ErrInvalidRequestShape, MsgInvalidDataProvided},
	{adapter.ErrInvalidBatch, MsgInvalidDataProvided},
	{adapter.ErrBadRequest, MsgInvalidDataProvided},
	{adapter.ErrUnprocessableEntity, MsgInvalidDataProvided},
	{adapter.ErrUnauthorized, MsgUnauthorized},
	{adapter.ErrForbidden, MsgUnauthorized},
	{adapter.ErrNotFound, MsgDatasetNotFound},
	{adapter.ErrTooManyRequests, MsgRateLimited},
	{adapter.ErrTransport, MsgServiceUnavailable},
	{adapter.ErrServiceUnavailable, MsgServiceUnavailable},
	{adapter.ErrBadGateway, MsgServiceUnavailable},
	{adapter.ErrGatewayTimeout, MsgServiceUnavailable},
	{service.ErrStagingFailed, MsgStagingFailed},
}

// UserMessage turns err into a message suitable for the terminal. Errors the
// loader does not classify keep their own text unless they look like network
// failures.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return MsgServiceUnavailable
	}

	return err.Error()
}
