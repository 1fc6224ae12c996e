package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/models"
)

type localTransactionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalTransactionRepository(db *DB, logger *logger.Logger) LocalTransactionRepository {
	return &localTransactionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localTransactionRepository) Insert(ctx context.Context, tx models.EncryptedTransaction) error {
	log := logger.FromContext(ctx)

	err := l.withRetry(ctx, func() error {
		_, err := l.DB.ExecContext(ctx, insertLocalTransaction,
			tx.LocalID,
			tx.ProductName,
			tx.Amount.String(),
			tx.Quantity,
			tx.PaymentType,
			tx.Timestamp.UnixMilli(),
			tx.Synced,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "localTransactionRepository.Insert").
				Str("local_id", tx.LocalID).
				Msg("transaction already stored")
			return fmt.Errorf("%w: %s", ErrDuplicateKey, tx.LocalID)
		}

		log.Err(err).
			Str("func", "localTransactionRepository.Insert").
			Str("local_id", tx.LocalID).
			Msg("failed to insert transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localTransactionRepository) List(ctx context.Context) ([]models.EncryptedTransaction, error) {
	return l.query(ctx, "localTransactionRepository.List", selectLocalTransactions)
}

func (l *localTransactionRepository) ListUnsynced(ctx context.Context) ([]models.EncryptedTransaction, error) {
	return l.query(ctx, "localTransactionRepository.ListUnsynced", selectUnsyncedLocalTransactions)
}

func (l *localTransactionRepository) query(ctx context.Context, funcName, query string) ([]models.EncryptedTransaction, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.EncryptedTransaction, 0)
	for rows.Next() {
		var (
			item   models.EncryptedTransaction
			tsMill int64
		)
		if err = rows.Scan(
			&item.LocalID,
			&item.ProductName,
			&item.Amount,
			&item.Quantity,
			&item.PaymentType,
			&tsMill,
			&item.Synced,
		); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		item.Timestamp = time.UnixMilli(tsMill)

		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (l *localTransactionRepository) MarkSynced(ctx context.Context, localID string) (bool, error) {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := l.withRetry(ctx, func() error {
		var execErr error
		res, execErr = l.DB.ExecContext(ctx, markLocalTransactionSynced, localID)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "localTransactionRepository.MarkSynced").
			Str("local_id", localID).
			Msg("failed to mark transaction as synced")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (l *localTransactionRepository) Delete(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	err := l.withRetry(ctx, func() error {
		_, err := l.DB.ExecContext(ctx, deleteLocalTransaction, localID)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "localTransactionRepository.Delete").
			Str("local_id", localID).
			Msg("failed to delete transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localTransactionRepository) CountUnsynced(ctx context.Context) (int, error) {
	var n int
	if err := l.DB.QueryRowContext(ctx, countUnsyncedLocalTransactions).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "localTransactionRepository.CountUnsynced").
			Msg("failed to count unsynced transactions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
