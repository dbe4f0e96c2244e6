package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/health/grpc_health_v1"
)

const pingTimeout = 2 * time.Second

// Check implements grpc.health.v1.Health/Check. An unreachable database is
// reported as NOT_SERVING rather than as an RPC error.
func (h *Handler) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{Status: h.status(ctx)}, nil
}

// Watch sends the current status once and returns.
func (h *Handler) Watch(_ *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	return stream.Send(&grpc_health_v1.HealthCheckResponse{Status: h.status(stream.Context())})
}

func (h *Handler) status(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if h.pinger == nil {
		return grpc_health_v1.HealthCheckResponse_SERVING
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Err(err).Str("func", "Handler.status").Msg("database health check failed")
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}
