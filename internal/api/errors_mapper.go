package api

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ligand/internal/service"
	"github.com/MKhiriev/go-ligand/internal/store"
	"github.com/MKhiriev/go-ligand/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidationFailed: http.StatusUnprocessableEntity,

	service.ErrTokenMissing:     http.StatusUnauthorized,
	service.ErrTokenInvalid:     http.StatusUnauthorized,
	service.ErrTokenExpired:     http.StatusUnauthorized,
	service.ErrSecretKeyNotSet:  http.StatusInternalServerError,
	service.ErrClientGeneration: http.StatusInternalServerError,

	store.ErrNotFound:            http.StatusNotFound,
	store.ErrAlreadyExists:       http.StatusConflict,
	store.ErrConstraintViolation: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// StatusFromError returns the HTTP status mapped to err, or 500 when err
// matches no known error. When err wraps several known errors the lowest
// status wins, so a classified driver error is reported as a client error.
func StatusFromError(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	found := http.StatusInternalServerError
	for target, status := range errorStatusMap {
		if status < found && errors.Is(err, target) {
			found = status
		}
	}
	return found
}
