package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/handler"
	"github.com/MKhiriev/item-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

func (s *server) runners() []runner {
	var runners []runner
	if s.httpServer != nil {
		runners = append(runners, s.httpServer)
	}
	if s.gRPCServer != nil {
		runners = append(runners, s.gRPCServer)
	}
	return runners
}

// run serves until parent is cancelled, a stop signal arrives or one of the
// transports fails. Every transport is shut down before run returns.
func (s *server) run(parent context.Context) error {
	runners := s.runners()
	if len(runners) == 0 {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errs := make(chan error, len(runners))
	var wg sync.WaitGroup
	for _, r := range runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.RunServer()
		}()
	}
	s.logger.Info().Int("servers", len(runners)).Msg("servers launched")

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errs:
	}

	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
