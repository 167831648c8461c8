package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// errorBody is written instead of data when data cannot be encoded.
const errorBody = `{"error":"response encoding failed"}`

// WriteJSON encodes data and writes it with statusCode. Responses are marked
// non-cacheable because every endpoint reports live staging state.
//
// If data cannot be encoded the response becomes 500 with a fixed JSON error
// body and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(errorBody))
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}
