package adapter

import "errors"

// Sentinel errors mapped from dataset API responses by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

var (
	// ErrTransport wraps failures that happened before a response was received.
	ErrTransport = errors.New("dataset api transport error")

	// ErrInvalidBatch wraps local validation failures; no request was sent.
	ErrInvalidBatch = errors.New("invalid dataset item batch")

	// ErrInvalidAddress is returned for an unusable dataset API base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
