package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-dataset-loader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "upload result",
			data:     models.UploadResult{Batches: 2, Items: 1500, Duplicates: 3},
			status:   http.StatusOK,
			wantBody: `{"batches":2,"items":1500,"duplicates":3,"failed":0}`,
		},
		{
			name:     "staged counts",
			data:     map[models.StagedStatus]int{models.StagedPending: 4},
			status:   http.StatusOK,
			wantBody: `{"pending":4}`,
		},
		{
			name:     "error status keeps body",
			data:     map[string]string{"status": "unavailable"},
			status:   http.StatusServiceUnavailable,
			wantBody: `{"status":"unavailable"}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_EncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]any{"ch": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, errorBody, w.Body.String())
}
