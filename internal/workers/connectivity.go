package workers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

const (
	defaultConnectivityInterval = 15 * time.Second
	defaultDialTimeout          = 3 * time.Second
)

var ErrInvalidProbeAddress = errors.New("invalid backend address for connectivity probe")

// ProbeFunc reports whether the backend is reachable right now.
type ProbeFunc func(ctx context.Context) bool

type connectivityMonitor struct {
	probe    ProbeFunc
	target   OnlineSetter
	interval time.Duration

	logger *logger.Logger
}

// NewConnectivityMonitor polls probe every interval and forwards changes to
// target. The first probe result is always forwarded.
func NewConnectivityMonitor(probe ProbeFunc, target OnlineSetter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultConnectivityInterval
	}
	return &connectivityMonitor{
		probe:    probe,
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

func (m *connectivityMonitor) Run(ctx context.Context) error {
	ctx = m.logger.WithContext(ctx)

	online := m.probe(ctx)
	m.logger.Info().Str("func", "connectivityMonitor.Run").Bool("online", online).Msg("connectivity monitor started")
	m.target.SetOnline(ctx, online)

	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			now := m.probe(ctx)
			if now == online {
				continue
			}
			online = now
			m.logger.Debug().Str("func", "connectivityMonitor.Run").Bool("online", online).Msg("connectivity changed")
			m.target.SetOnline(ctx, online)
		}
	}
}

// NewTCPProbe dials the host of baseURL. A completed TCP handshake counts as
// online; HTTP-level health is left to the reconciliation probe.
func NewTCPProbe(baseURL string, timeout time.Duration) (ProbeFunc, error) {
	addr, err := dialAddress(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	dialer := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context) bool {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, nil
}

// dialAddress resolves host:port from baseURL. A bare host:port gets
// http:// like the backend adapter does.
func dialAddress(baseURL string) (string, error) {
	raw := strings.TrimSpace(baseURL)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidProbeAddress, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidProbeAddress, baseURL)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}

	return net.JoinHostPort(u.Hostname(), port), nil
}
