package service

import (
	"context"

	"github.com/MKhiriev/pos-lite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TransactionService is the backend side of the sale ledger.
type TransactionService interface {
	// Add stores txs, skipping local ids that are already present, and
	// returns only the newly created rows. A record without a local id is
	// given one.
	Add(ctx context.Context, txs []models.Transaction) ([]models.Transaction, error)

	// Sync stores txs like Add and returns every local id the backend now
	// holds, whether it was inserted by this call or an earlier one.
	Sync(ctx context.Context, txs []models.Transaction) ([]string, error)

	// List returns stored transactions matching filter, newest first.
	List(ctx context.Context, filter models.TransactionsFilter) ([]models.Transaction, error)

	// Stats aggregates the backend ledger for today and the current week.
	// Pending is always zero on the backend.
	Stats(ctx context.Context) (models.Stats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
