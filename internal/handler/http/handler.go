package http

import (
	"context"

	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/metrics"
	"github.com/MKhiriev/item-api/internal/service"
)

// Pinger reports whether the backing database is reachable.
// *store.DB satisfies it through the embedded *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. pinger and m may be nil: /healthz then
// always reports ok and /metrics is not mounted.
func NewHandler(services *service.Services, pinger Pinger, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		metrics:  m,
		logger:   logger,
	}
}
