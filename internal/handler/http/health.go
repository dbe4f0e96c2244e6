package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/item-api/internal/logger"
)

const pingTimeout = 2 * time.Second

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, "Hello World", http.StatusOK)
}

// healthz answers 503 while the database does not respond to a ping.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.pinger.PingContext(ctx); err != nil {
			logger.FromRequest(r).Err(err).Msg("database health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unavailable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
