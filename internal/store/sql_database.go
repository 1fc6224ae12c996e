package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
)

// DB wraps *sql.DB with a driver-specific error classifier and a logger.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// retryDelays are the pauses between attempts of a retryable operation.
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, time.Second}

// withRetry runs op and repeats it while the classifier reports the error
// as retryable, up to len(retryDelays) extra attempts.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Dur("delay", delay).
			Msg("retryable database error, trying again")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		err = op()
	}

	return err
}
