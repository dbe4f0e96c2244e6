package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/item-api/internal/config"
	"github.com/MKhiriev/item-api/internal/events"
	"github.com/MKhiriev/item-api/internal/handler"
	"github.com/MKhiriev/item-api/internal/logger"
	"github.com/MKhiriev/item-api/internal/metrics"
	"github.com/MKhiriev/item-api/internal/server"
	"github.com/MKhiriev/item-api/internal/service"
	"github.com/MKhiriev/item-api/internal/store"
	"github.com/MKhiriev/item-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("item-api")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Int("credentials", len(cfg.App.Credentials)).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.New()
	storages.DB.SetTxObserver(m)

	publisher := newPublisher(cfg.Events, log)
	defer publisher.Close()

	services, err := service.NewServices(storages, publisher, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.DB, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newPublisher connects to the broker when one is configured. An unreachable
// broker does not stop the API; events are dropped instead.
func newPublisher(cfg config.Events, log *logger.Logger) events.Publisher {
	if cfg.AMQPURL == "" {
		log.Info().Msg("no AMQP url configured, item events are disabled")
		return events.NopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, log)
	if err != nil {
		log.Err(err).Msg("error connecting to AMQP broker, item events are disabled")
		return events.NopPublisher{}
	}

	return publisher
}
