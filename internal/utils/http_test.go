package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ligand/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name         string
		data         any
		status       int
		expectedBody string
	}{
		{
			name:         "client download link",
			data:         models.ClientDownload{Code: uuid.MustParse("8e2c1f4a-3c1b-4f0e-9d0a-6a1b2c3d4e5f"), Link: "http://gen/download/abc"},
			status:       http.StatusOK,
			expectedBody: `{"code":"8e2c1f4a-3c1b-4f0e-9d0a-6a1b2c3d4e5f","link":"http://gen/download/abc"}`,
		},
		{
			name:         "pagination metadata omits empty pages",
			data:         models.PaginationMetadata{Total: 3, TotalPages: 1, FirstPage: 1, LastPage: 1, Page: 1},
			status:       http.StatusOK,
			expectedBody: `{"total":3,"total_pages":1,"first_page":1,"last_page":1,"page":1}`,
		},
		{
			name:         "created",
			data:         map[string]int{"id": 7},
			status:       http.StatusCreated,
			expectedBody: `{"id":7}`,
		},
		{
			name:         "nil",
			data:         nil,
			status:       http.StatusOK,
			expectedBody: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.expectedBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unserializable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteRawJSON(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteRawJSON(w, []byte(`{"openapi":"3.0.3"}`), http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, `{"openapi":"3.0.3"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
