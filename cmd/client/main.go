package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/pos-lite/internal/adapter"
	"github.com/MKhiriev/pos-lite/internal/client"
	"github.com/MKhiriev/pos-lite/internal/config"
	handler "github.com/MKhiriev/pos-lite/internal/handler/http"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/server"
	"github.com/MKhiriev/pos-lite/internal/service"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/workers"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("pos-lite-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("pos-lite-client", cfg.App.LogFile)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	openStore := func(ctx context.Context) (*store.ClientStorages, error) {
		return store.NewClientStorages(ctx, cfg.Storage.Path, log)
	}
	services := service.NewClientServices(openStore, backend, log)

	probe, err := workers.NewTCPProbe(cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("create connectivity probe")
	}

	api := handler.NewClientHandler(services, buildInfo.BuildVersion(), log)
	apiServer, err := server.NewServer(api.Init(), cfg.APIAddress, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local api server")
	}

	app, err := client.NewApp(services, apiServer, probe, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
