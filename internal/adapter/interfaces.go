// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the POS backend on behalf of the terminal.
//
// [BackendAdapter] hides the wire protocol from the service layer. The only
// implementation is HTTP/JSON over resty ([NewHTTPBackendAdapter]). Non-2xx
// statuses are mapped to the sentinels in errors.go by mapHTTPError, and
// transport failures (refused connections, timeouts) wrap
// [ErrBackendUnavailable], so callers can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/pos-lite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the terminal's view of the backend API.
type BackendAdapter interface {
	// Ping calls GET / and succeeds only on a 2xx answer.
	Ping(ctx context.Context) (models.StatusResponse, error)

	// AddTransaction posts one record to POST /add. It never returns an
	// error: Success is true only for a 2xx answer with a well-formed body,
	// everything else is reported through Error.
	AddTransaction(ctx context.Context, tx models.Transaction) models.AddResult

	// SyncTransactions posts a batch to POST /sync and returns the
	// acknowledged local ids. When the backend omits synced_ids every
	// submitted id counts as acknowledged.
	SyncTransactions(ctx context.Context, txs []models.Transaction) ([]string, error)

	// GetTransactions calls GET /transactions?days=N.
	GetTransactions(ctx context.Context, days int) ([]models.Transaction, error)

	// GetStats calls GET /stats.
	GetStats(ctx context.Context) (models.Stats, error)
}
