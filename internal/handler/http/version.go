package http

import (
	"net/http"

	"github.com/MKhiriev/go-dataset-loader/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"version": h.buildInfo.BuildVersion(),
		"date":    h.buildInfo.BuildDate(),
		"commit":  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}

// health reports whether the staging store answers.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.datasetService.Stats(r.Context()); err != nil {
		utils.WriteJSON(w, map[string]string{"status": "unavailable", "error": err.Error()}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
