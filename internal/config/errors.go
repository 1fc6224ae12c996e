package config

import "errors"

// Validation errors returned when a config view is incomplete.
var (
	// ErrInvalidAdapterConfigs: backend URL unparsable or timeout not positive.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: missing DSN/path, or an in-memory SQLite path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: signing enabled without a token lifetime.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: non-positive intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs: missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
