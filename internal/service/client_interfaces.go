package service

import (
	"context"
	"time"

	"github.com/MKhiriev/pos-lite/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// LocalTransactionService is the terminal's durable sale log. Product name
// and payment type are stored obfuscated with the installation key and
// decrypted on read.
type LocalTransactionService interface {
	// Init opens the store, applies migrations and loads or creates the
	// installation key. It is idempotent and safe for concurrent use; every
	// other method calls it first.
	Init(ctx context.Context) error

	// Save validates tx and stores it with Synced forced to false.
	// A repeated local id yields store.ErrDuplicateKey.
	Save(ctx context.Context, tx models.Transaction) (models.Transaction, error)

	// Record turns a sale entered at the till into a transaction with a
	// fresh local id and the current time, then saves it.
	Record(ctx context.Context, sale models.NewSale) (models.Transaction, error)

	// GetAll returns every record, newest first. A field that cannot be
	// decrypted comes back nil; the record is still returned.
	GetAll(ctx context.Context) ([]models.Transaction, error)

	// GetUnsynced returns unacknowledged records in insertion order.
	GetUnsynced(ctx context.Context) ([]models.Transaction, error)

	// MarkSynced flags ids as acknowledged and returns how many changed.
	// Unknown or already synced ids are skipped. Empty input does no I/O.
	MarkSynced(ctx context.Context, ids []string) (int, error)

	// Delete removes a record. An unknown id is not an error.
	Delete(ctx context.Context, localID string) error

	// Stats aggregates all local records at the current time.
	Stats(ctx context.Context) (models.Stats, error)

	// PendingCount returns the number of unacknowledged records.
	PendingCount(ctx context.Context) (int, error)

	Close() error
}

// ClientSyncService reconciles the local log with the backend.
type ClientSyncService interface {
	// SetOnline records the connectivity signal. Going from offline to
	// online starts a reconciliation pass in the background.
	SetOnline(ctx context.Context, online bool)

	// Reconcile runs one pass. Only one pass runs at a time; a concurrent
	// call returns a skipped report at once. Backend faults are reported
	// in the SyncReport, only local store faults come back as error.
	Reconcile(ctx context.Context) (models.SyncReport, error)

	// CombinedStats prefers backend statistics with the local pending
	// count, and falls back to local statistics.
	CombinedStats(ctx context.Context) (models.Stats, error)

	// FetchBackendTransactions returns the backend ledger for the last
	// days (7 when days <= 0), or an empty slice when it is unreachable.
	FetchBackendTransactions(ctx context.Context, days int) []models.Transaction

	State() models.SyncState
	Status(ctx context.Context) (models.SyncStatus, error)
}

// ClientSyncJob calls Reconcile periodically.
type ClientSyncJob interface {
	// Start runs a pass after initialDelay and then every interval until
	// ctx is done or Stop is called.
	Start(ctx context.Context, interval, initialDelay time.Duration)

	Stop()
}
