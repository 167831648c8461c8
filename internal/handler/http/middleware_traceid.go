package http

import (
	"net/http"

	"github.com/MKhiriev/go-dataset-loader/internal/utils"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

var requestIDs = utils.NewUUIDGenerator()

// withTraceID attaches a request-scoped logger carrying the request id to the
// request context. The id comes from X-Request-ID or is a new UUID v7.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = requestIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
