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

// transactionRepository is the PostgreSQL implementation of
// [TransactionRepository]. Rows are keyed by the terminal-generated
// local_id, so inserting the same sale twice is a no-op.
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// Create stores txs inside one database transaction. Rows whose local_id is
// already present come back in CreateResult.Existing; the rest are returned
// with their server ids in CreateResult.Created.
func (t *transactionRepository) Create(ctx context.Context, terminalID string, txs []models.Transaction) (CreateResult, error) {
	log := logger.FromContext(ctx)
	result := CreateResult{
		Created:  make([]models.Transaction, 0, len(txs)),
		Existing: make([]string, 0),
	}

	dbTx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.Create").Msg("failed to begin transaction")
		return CreateResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer dbTx.Rollback()

	for i, tx := range txs {
		query, args, buildErr := buildInsertTransactionQuery(ctx, terminalID, tx)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "transactionRepository.Create").
				Int("iteration", i).
				Msg("failed to build insert query")
			return CreateResult{}, buildErr
		}

		var id int64
		scanErr := dbTx.QueryRowContext(ctx, query, args...).Scan(&id)
		if errors.Is(scanErr, sql.ErrNoRows) {
			result.Existing = append(result.Existing, tx.LocalID)
			continue
		}
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "transactionRepository.Create").
				Str("local_id", tx.LocalID).
				Int("iteration", i).
				Msg("failed to insert transaction")
			if isUniqueViolation(scanErr) {
				return CreateResult{}, fmt.Errorf("%w: %w", ErrDuplicateKey, scanErr)
			}
			return CreateResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		tx.ID = id
		tx.Synced = true
		result.Created = append(result.Created, tx)
	}

	if err = dbTx.Commit(); err != nil {
		log.Err(err).Str("func", "transactionRepository.Create").Msg("failed to commit transaction")
		return CreateResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return result, nil
}

func (t *transactionRepository) List(ctx context.Context, filter models.TransactionsFilter, now time.Time) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(ctx, filter, now)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.List").Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, 50)
	for rows.Next() {
		var item models.Transaction
		if scanErr := rows.Scan(
			&item.ID,
			&item.LocalID,
			&item.ProductName,
			&item.Amount,
			&item.Quantity,
			&item.PaymentType,
			&item.Timestamp,
			&item.Synced,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "transactionRepository.List").Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "transactionRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (t *transactionRepository) Summarize(ctx context.Context, since time.Time) (models.PeriodStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSummarizeQuery(ctx, since)
	if err != nil {
		log.Err(err).Str("func", "transactionRepository.Summarize").Msg("failed to create query")
		return models.PeriodStats{}, err
	}

	var stats models.PeriodStats
	if err = t.DB.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Count); err != nil {
		log.Err(err).
			Str("func", "transactionRepository.Summarize").
			Time("since", since).
			Msg("failed to summarize transactions")
		return models.PeriodStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}
