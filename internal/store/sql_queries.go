package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pos-lite/models"
)

const transactionsTable = "transactions"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var transactionColumns = []string{
	"id",
	"local_id",
	"product_name",
	"amount",
	"quantity",
	"payment_type",
	"timestamp",
	"synced",
}

func buildInsertTransactionQuery(_ context.Context, terminalID string, tx models.Transaction) (string, []any, error) {
	query, args, err := psql.
		Insert(transactionsTable).
		Columns("local_id", "product_name", "amount", "quantity", "payment_type", "timestamp", "synced", "terminal_id").
		Values(
			tx.LocalID,
			nullString(tx.ProductName),
			tx.Amount,
			tx.Quantity,
			nullString(tx.PaymentType),
			tx.Timestamp.UTC(),
			true,
			sql.NullString{String: terminalID, Valid: terminalID != ""},
		).
		Suffix("ON CONFLICT (local_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListTransactionsQuery applies filter.Days when positive, otherwise
// the optional Start/End bounds. No filter selects everything.
func buildListTransactionsQuery(_ context.Context, filter models.TransactionsFilter, now time.Time) (string, []any, error) {
	builder := psql.
		Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("timestamp DESC", "id DESC")

	switch {
	case filter.Days > 0:
		builder = builder.Where(sq.GtOrEq{"timestamp": now.AddDate(0, 0, -filter.Days)})
	default:
		if filter.Start != nil {
			builder = builder.Where(sq.GtOrEq{"timestamp": *filter.Start})
		}
		if filter.End != nil {
			builder = builder.Where(sq.LtOrEq{"timestamp": *filter.End})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSummarizeQuery(_ context.Context, since time.Time) (string, []any, error) {
	query, args, err := psql.
		Select("COALESCE(SUM(amount * quantity), 0)", "COUNT(*)").
		From(transactionsTable).
		Where(sq.GtOrEq{"timestamp": since}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
