package http

import (
	"net/http"

	"github.com/MKhiriev/go-dataset-loader/internal/logger"
	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/MKhiriev/go-dataset-loader/models"
)

type flushResponse struct {
	Result models.UploadResult `json:"result"`
	Error  string              `json:"error,omitempty"`
}

func (h *Handler) stagedStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	counts, err := h.datasetService.Stats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.stagedStats").Msg("error counting staged items")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	body := map[models.StagedStatus]int{
		models.StagedPending:  counts[models.StagedPending],
		models.StagedUploaded: counts[models.StagedUploaded],
		models.StagedFailed:   counts[models.StagedFailed],
	}
	utils.WriteJSON(w, body, http.StatusOK)
}

func (h *Handler) flush(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.datasetService.Flush(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.flush").Msg("manual flush failed")
		utils.WriteJSON(w, flushResponse{Result: result, Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, flushResponse{Result: result}, http.StatusOK)
}

func (h *Handler) requeue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requeued, err := h.datasetService.Requeue(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.requeue").Msg("error requeueing staged items")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int64{"requeued": requeued}, http.StatusOK)
}
