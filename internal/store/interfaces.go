package store

import (
	"context"
	"time"

	"github.com/MKhiriev/pos-lite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CreateResult splits a batch insert into the rows that were stored now and
// the local ids that were already present.
type CreateResult struct {
	Created  []models.Transaction
	Existing []string
}

// TransactionRepository is the backend's PostgreSQL transaction table.
type TransactionRepository interface {
	// Create inserts txs in one database transaction. A local_id that
	// already exists is skipped and reported in CreateResult.Existing.
	Create(ctx context.Context, terminalID string, txs []models.Transaction) (CreateResult, error)

	// List returns transactions matching filter, newest first.
	List(ctx context.Context, filter models.TransactionsFilter, now time.Time) ([]models.Transaction, error)

	// Summarize returns Σ(amount×quantity) and the count of transactions
	// with timestamp >= since.
	Summarize(ctx context.Context, since time.Time) (models.PeriodStats, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
