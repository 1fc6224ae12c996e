package http

import (
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/service"
)

// ClientHandler serves the terminal's local API.
type ClientHandler struct {
	services *service.ClientServices
	version  string

	logger *logger.Logger
}

func NewClientHandler(services *service.ClientServices, version string, logger *logger.Logger) *ClientHandler {
	return &ClientHandler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
