// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by both binaries.
// Each binary reads the subset it needs through [GetClientConfig] or
// [GetServerConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       variable name of a scalar field.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	API     API     `envPrefix:"API_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Broker  Broker  `envPrefix:"BROKER_"`

	// JSONFilePath points to an optional JSON file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds security and identity settings.
type App struct {
	// TokenSignKey signs terminal bearer tokens. When empty the backend does
	// not require authentication and the terminal sends no token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TerminalID is the subject of the terminal's bearer token.
	// Env: APP_TERMINAL_ID
	TerminalID string `env:"TERMINAL_ID"`

	// HashKey enables the HashSHA256 body integrity header on both sides.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version overrides the linker-injected build version in the backend
	// liveness response.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the terminal writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups both persistence backends.
type Storage struct {
	// Env: STORAGE_DB_DATABASE_URI (backend PostgreSQL DSN)
	DB DB `envPrefix:"DB_"`

	// Env: STORAGE_LOCAL_PATH (terminal SQLite file)
	Local Local `envPrefix:"LOCAL_"`
}

type DB struct {
	DSN string `env:"DATABASE_URI"`
}

type Local struct {
	Path string `env:"PATH"`
}

// Server is the backend listener.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// API is the terminal's local HTTP surface consumed by the presentation
// layer.
type API struct {
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`
}

// Adapter describes how the terminal reaches the backend.
type Adapter struct {
	// HTTPAddress is the backend base URL. A bare host:port gets http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the terminal's background triggers.
type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Env: WORKERS_CONNECTIVITY_INTERVAL
	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`

	// Env: WORKERS_INITIAL_SYNC_DELAY
	InitialSyncDelay time.Duration `env:"INITIAL_SYNC_DELAY"`
}

// Broker configures optional publication of sale events by the backend.
// An empty URL disables it.
type Broker struct {
	// Env: BROKER_URL
	URL string `env:"URL"`

	// Env: BROKER_EXCHANGE
	Exchange string `env:"EXCHANGE"`

	// Env: BROKER_QUEUE
	Queue string `env:"QUEUE"`
}

// GetStructuredConfig loads and merges configuration. Sources are merged
// with mergo without override, so a field set by an earlier source wins:
//  1. environment variables
//  2. command-line flags
//  3. JSON file named by 1 or 2
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagArgs()).
		withJSON().
		build()
}
