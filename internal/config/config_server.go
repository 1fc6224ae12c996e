package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress  = "0.0.0.0:5000"
	defaultRequestTimeout = 30 * time.Second
	defaultBrokerExchange = "pos-lite"
	defaultBrokerQueue    = "sales.recorded"
)

// ServerApp holds backend security settings.
type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
	HashKey      string
	Version      string
}

// ServerBroker configures sale event publication. Disabled when URL is "".
type ServerBroker struct {
	URL      string
	Exchange string
	Queue    string
}

// ServerConfig is the backend's view of [StructuredConfig].
type ServerConfig struct {
	App            ServerApp
	HTTPAddress    string
	RequestTimeout time.Duration
	DSN            string
	Broker         ServerBroker
}

// GetServerConfig loads the structured config, keeps the backend fields,
// fills defaults and validates the result.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	s := &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			HashKey:      cfg.App.HashKey,
			Version:      cfg.App.Version,
		},
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		Broker: ServerBroker{
			URL:      cfg.Broker.URL,
			Exchange: cfg.Broker.Exchange,
			Queue:    cfg.Broker.Queue,
		},
	}

	setDefault(&s.HTTPAddress, defaultServerAddress)
	setDefault(&s.RequestTimeout, defaultRequestTimeout)
	setDefault(&s.App.TokenIssuer, defaultTokenIssuer)
	if s.Broker.URL != "" {
		setDefault(&s.Broker.Exchange, defaultBrokerExchange)
		setDefault(&s.Broker.Queue, defaultBrokerQueue)
	}

	return s
}
