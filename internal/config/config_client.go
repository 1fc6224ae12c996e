package config

import (
	"fmt"
	"os"
	"time"
)

// Terminal defaults, applied to fields no source set.
const (
	defaultBackendURL           = "http://localhost:5000"
	defaultLocalPath            = "pos-lite.db"
	defaultAPIAddress           = "localhost:8081"
	defaultAdapterTimeout       = 10 * time.Second
	defaultSyncInterval         = 5 * time.Minute
	defaultConnectivityInterval = 15 * time.Second
	defaultInitialSyncDelay     = 2 * time.Second
	defaultTokenIssuer          = "pos-lite"
	defaultTokenDuration        = 24 * time.Hour
)

// ClientApp holds terminal identity and signing settings.
type ClientApp struct {
	TerminalID    string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
	LogFile       string
}

// ClientAdapter holds backend transport settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds the local store location.
type ClientStorage struct {
	Path string
}

// ClientWorkers holds the reconciliation trigger timings.
type ClientWorkers struct {
	SyncInterval         time.Duration
	ConnectivityInterval time.Duration
	InitialSyncDelay     time.Duration
}

// ClientConfig is the terminal's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers

	// APIAddress is where the local presentation API listens.
	APIAddress string
}

// GetClientConfig loads the structured config, keeps the terminal fields,
// fills defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	c := &ClientConfig{
		App: ClientApp{
			TerminalID:    cfg.App.TerminalID,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{Path: cfg.Storage.Local.Path},
		Workers: ClientWorkers{
			SyncInterval:         cfg.Workers.SyncInterval,
			ConnectivityInterval: cfg.Workers.ConnectivityInterval,
			InitialSyncDelay:     cfg.Workers.InitialSyncDelay,
		},
		APIAddress: cfg.API.Address,
	}
	c.applyDefaults()

	return c
}

func (c *ClientConfig) applyDefaults() {
	setDefault(&c.Adapter.HTTPAddress, defaultBackendURL)
	setDefault(&c.Adapter.RequestTimeout, defaultAdapterTimeout)
	setDefault(&c.Storage.Path, defaultLocalPath)
	setDefault(&c.APIAddress, defaultAPIAddress)
	setDefault(&c.Workers.SyncInterval, defaultSyncInterval)
	setDefault(&c.Workers.ConnectivityInterval, defaultConnectivityInterval)
	setDefault(&c.Workers.InitialSyncDelay, defaultInitialSyncDelay)
	setDefault(&c.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&c.App.TokenDuration, defaultTokenDuration)

	if c.App.TerminalID == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "terminal"
		}
		c.App.TerminalID = host
	}
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
