package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pos-lite/internal/service"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrStoreUnavailable:      http.StatusServiceUnavailable,

	validators.ErrUnsupportedType:   http.StatusBadRequest,
	validators.ErrEmptyTransactions: http.StatusBadRequest,

	store.ErrDuplicateKey: http.StatusConflict,
	store.ErrNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError hides internal failures from callers; client errors are
// echoed back so the terminal can log them.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
