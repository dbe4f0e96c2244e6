// Package grpc implements the optional gRPC listener of the item service.
// It serves the standard grpc.health.v1.Health protocol, backed by a
// database ping.
package grpc

import (
	"context"

	"github.com/MKhiriev/item-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and registered on the gRPC
// server with [Handler.Register].
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// pinger is checked on every health request; nil means always serving.
	pinger Pinger

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the given database pinger.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Register attaches every service implemented by h to server.
func (h *Handler) Register(server *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(server, h)
}

// UnaryInterceptors returns the interceptors the gRPC server is built with.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{loggingInterceptor(h.logger)}
}
