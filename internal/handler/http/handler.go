package http

import (
	"github.com/MKhiriev/pos-lite/internal/config"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/service"
	"github.com/MKhiriev/pos-lite/internal/utils"
)

// Handler serves the backend API.
type Handler struct {
	services *service.Services
	app      config.ServerApp

	logger *logger.Logger
}

// NewHandler builds the backend handler. Terminal authentication is enforced
// only when app.TokenSignKey is set, and body signatures are checked only
// when app.HashKey is set.
func NewHandler(services *service.Services, app config.ServerApp, logger *logger.Logger) *Handler {
	if app.HashKey != "" {
		utils.InitHasherPool(app.HashKey)
	}

	logger.Info().
		Bool("auth", app.TokenSignKey != "").
		Bool("integrity", app.HashKey != "").
		Msg("http handler created")

	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
}
