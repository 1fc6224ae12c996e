package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/pos-lite/internal/broker"
	"github.com/MKhiriev/pos-lite/internal/config"
	handler "github.com/MKhiriev/pos-lite/internal/handler/http"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/server"
	"github.com/MKhiriev/pos-lite/internal/service"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	_ = godotenv.Load()

	log := logger.NewLogger("pos-lite-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher := broker.NewNoopPublisher()
	if cfg.Broker.URL != "" {
		publisher, err = broker.NewAMQPPublisher(cfg.Broker, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to message broker")
		}
	}
	defer publisher.Close()

	services, err := service.NewServices(storages, publisher, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	h := handler.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(h.Init(), cfg.HTTPAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
