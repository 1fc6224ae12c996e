package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

// ClientStorages groups the terminal repositories that share one SQLite
// connection.
type ClientStorages struct {
	Transactions LocalTransactionRepository
	Settings     LocalSettingsRepository

	db *DB
}

// NewClientStorages opens the SQLite file at path, runs the migrations and
// wires the repositories.
func NewClientStorages(ctx context.Context, path string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("func", "NewClientStorages").Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Transactions: NewLocalTransactionRepository(db, logger),
		Settings:     NewLocalSettingsRepository(db),
		db:           db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
