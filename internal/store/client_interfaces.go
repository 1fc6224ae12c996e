package store

import (
	"context"

	"github.com/MKhiriev/pos-lite/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTransactionRepository is the terminal's SQLite transaction table.
// Every method is a single statement and therefore atomic on its own.
type LocalTransactionRepository interface {
	// Insert stores a new record. A duplicate local_id yields ErrDuplicateKey.
	Insert(ctx context.Context, tx models.EncryptedTransaction) error

	// List returns every record, newest timestamp first.
	List(ctx context.Context) ([]models.EncryptedTransaction, error)

	// ListUnsynced returns records with synced = false in insertion order.
	ListUnsynced(ctx context.Context) ([]models.EncryptedTransaction, error)

	// MarkSynced flips synced to true for localID. It reports false when the
	// id is unknown or already synced.
	MarkSynced(ctx context.Context, localID string) (bool, error)

	// Delete removes localID. Deleting an absent id is not an error.
	Delete(ctx context.Context, localID string) error

	// CountUnsynced returns the number of records with synced = false.
	CountUnsynced(ctx context.Context) (int, error)
}

// LocalSettingsRepository is a small key/value table for terminal state
// that must survive restarts, such as the installation key.
type LocalSettingsRepository interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// PutIfAbsent stores value under key unless key is already set, and
	// returns whichever value is stored afterwards.
	PutIfAbsent(ctx context.Context, key, value string) (string, error)
}
