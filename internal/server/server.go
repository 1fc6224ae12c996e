package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

type server struct {
	httpServer *httpServer
	listen     func(network, address string) (net.Listener, error)

	logger *logger.Logger
}

func NewServer(handler http.Handler, address string, requestTimeout time.Duration, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", address).Msg("creating new server...")

	if address == "" {
		return nil, errNoServersAreCreated
	}
	if handler == nil {
		return nil, errNilHandler
	}

	return &server{
		httpServer: newHTTPServer(handler, address, requestTimeout, logger),
		listen:     net.Listen,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ln, err := s.listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	if err = s.httpServer.shutdown(); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
