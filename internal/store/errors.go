package store

import "errors"

// Domain-level sentinels. Match with [errors.Is].
var (
	// ErrDuplicateKey is returned when a record with the same local_id is
	// already stored.
	ErrDuplicateKey = errors.New("transaction with this local_id already exists")

	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("record not found")
)

// Low-level SQL failures, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan transaction row")
	ErrScanningRows         = errors.New("failed to iterate transaction rows")
)
