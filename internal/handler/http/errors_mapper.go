package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dataset-loader/internal/service"
	"github.com/MKhiriev/go-dataset-loader/internal/store"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{store.ErrRetryable, http.StatusServiceUnavailable},

	{service.ErrInvalidItems, http.StatusUnprocessableEntity},
	{service.ErrInvalidPurgeAge, http.StatusBadRequest},
	{service.ErrFlushFailed, http.StatusBadGateway},
	{service.ErrUploadFailed, http.StatusBadGateway},
	{service.ErrStagingFailed, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}
