package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/item-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func loggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if err != nil {
			log.Err(err).
				Str("method", info.FullMethod).
				Str("code", status.Code(err).String()).
				Dur("duration", time.Since(start)).
				Msg("gRPC request failed")
		} else {
			log.Info().
				Str("method", info.FullMethod).
				Dur("duration", time.Since(start)).
				Msg("gRPC request completed")
		}

		return resp, err
	}
}
