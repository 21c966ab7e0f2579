package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deck-sync/internal/service"
	"github.com/MKhiriev/go-deck-sync/internal/store"
)

// errorStatuses is checked in order: the repository wraps a retryable
// failure with both ErrStorageUnavailable and the failed SQL step.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
