package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ligand/models"
)

// PaginationHeader carries the JSON encoded [models.PaginationMetadata].
const PaginationHeader = "X-Pagination"

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ParsePagination reads the page and page_size query arguments. Missing
// arguments default to page 1 of size 10; out-of-range values yield a 422
// *HTTPError.
func ParsePagination(r *http.Request) (models.PaginationParams, error) {
	params := models.PaginationParams{Page: defaultPage, PageSize: defaultPageSize}
	if err := DecodeQuery(r, &params); err != nil {
		return models.PaginationParams{}, err
	}

	return params, nil
}

// SetPaginationHeader writes meta into the X-Pagination header. It must be
// called before the response status is written.
func SetPaginationHeader(w http.ResponseWriter, meta models.PaginationMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("error encoding pagination metadata: %w", err)
	}

	w.Header().Set(PaginationHeader, string(data))
	return nil
}
