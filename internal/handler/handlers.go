package handler

import (
	"context"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/handler/grpc"
	"github.com/MKhiriev/item-api/internal/handler/http"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/metrics"
	"github.com/MKhiriev/item-api/internal/service"
)

// Pinger is the database liveness check shared by both transports.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, pinger Pinger, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if services == nil {
			return nil, errNoServices
		}
		handlers.HTTP = http.NewHandler(services, pinger, m, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
