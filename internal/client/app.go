package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pos-lite/internal/config"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/server"
	"github.com/MKhiriev/pos-lite/internal/service"
	"github.com/MKhiriev/pos-lite/internal/workers"
)

var errMissingComponent = errors.New("client app: missing component")

type App struct {
	services *service.ClientServices
	api      server.Server
	probe    workers.ProbeFunc
	cfg      config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, api server.Server, probe workers.ProbeFunc, cfg config.ClientWorkers, logger *logger.Logger) (Client, error) {
	if services == nil || api == nil || probe == nil {
		return nil, errMissingComponent
	}

	return &App{
		services: services,
		api:      api,
		probe:    probe,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if err := a.services.TransactionService.Init(ctx); err != nil {
		return fmt.Errorf("init local store: %w", err)
	}
	defer func() {
		if err := a.services.TransactionService.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close local store")
		}
	}()

	a.logger.Info().
		Str("func", "App.Run").
		Dur("sync_interval", a.cfg.SyncInterval).
		Dur("connectivity_interval", a.cfg.ConnectivityInterval).
		Msg("terminal started")

	err := workers.NewWorkers(
		workers.NewConnectivityMonitor(a.probe, a.services.SyncService, a.cfg.ConnectivityInterval, a.logger),
		workers.NewSyncWorker(a.services.SyncJob, a.cfg.SyncInterval, a.cfg.InitialSyncDelay),
		workers.WorkerFunc(a.api.RunServer),
	).Run(ctx)

	a.logger.Info().Str("func", "App.Run").Msg("terminal stopped")
	return err
}
