package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

type localSettingsRepository struct {
	*DB
}

func NewLocalSettingsRepository(db *DB) LocalSettingsRepository {
	return &localSettingsRepository{DB: db}
}

func (s *localSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, selectSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: setting %q", ErrNotFound, key)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSettingsRepository.Get").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *localSettingsRepository) PutIfAbsent(ctx context.Context, key, value string) (string, error) {
	err := s.withRetry(ctx, func() error {
		_, err := s.DB.ExecContext(ctx, insertSettingIfAbsent, key, value)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSettingsRepository.PutIfAbsent").
			Str("key", key).
			Msg("failed to store setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return s.Get(ctx, key)
}
