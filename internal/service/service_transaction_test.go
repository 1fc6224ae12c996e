// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/mock"
	"github.com/MKhiriev/pos-lite/internal/stats"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/internal/validators"
	"github.com/MKhiriev/pos-lite/models"
)

func newTestTxSvc(t *testing.T, ctrl *gomock.Controller) (*transactionService, *mock.MockTransactionRepository, *mock.MockPublisher) {
	t.Helper()
	repo := mock.NewMockTransactionRepository(ctrl)
	pub := mock.NewMockPublisher(ctrl)

	svc := NewTransactionService(repo, validators.NewTransactionValidator(), pub, logger.Nop()).(*transactionService)
	return svc, repo, pub
}

func backendTx(localID string) models.Transaction {
	return models.Transaction{
		LocalID:     localID,
		ProductName: models.StrPtr("Bagel"),
		Amount:      decimal.RequireFromString("1.20"),
		Quantity:    3,
		PaymentType: models.StrPtr("mobile"),
		Timestamp:   time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC),
	}
}

// ── Add ──

func TestTransactionService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pub := newTestTxSvc(t, ctrl)
	ctx := utils.WithTerminalID(context.Background(), "till-7")

	in := []models.Transaction{backendTx("a"), backendTx("b")}
	created := backendTx("a")
	created.ID = 11

	repo.EXPECT().Create(ctx, "till-7", in).Return(store.CreateResult{
		Created:  []models.Transaction{created},
		Existing: []string{"b"},
	}, nil)
	pub.EXPECT().PublishSaleRecorded(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev models.SaleRecordedEvent) error {
		assert.Equal(t, "a", ev.LocalID)
		return nil
	})

	got, err := svc.Add(ctx, in)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(11), got[0].ID)
}

func TestTransactionService_Add_AssignsMissingLocalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pub := newTestTxSvc(t, ctrl)
	svc.ids = &fixedIDs{"generated"}
	ctx := context.Background()

	tx := backendTx("")

	repo.EXPECT().Create(ctx, "", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, txs []models.Transaction) (store.CreateResult, error) {
		require.Len(t, txs, 1)
		assert.Equal(t, "generated", txs[0].LocalID)
		return store.CreateResult{Created: txs}, nil
	})
	pub.EXPECT().PublishSaleRecorded(ctx, gomock.Any()).Return(nil)

	got, err := svc.Add(ctx, []models.Transaction{tx})
	require.NoError(t, err)
	assert.Equal(t, "generated", got[0].LocalID)
}

func TestTransactionService_Add_InvalidBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTxSvc(t, ctrl)

	bad := backendTx("a")
	bad.Quantity = 0

	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Add(context.Background(), []models.Transaction{bad})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrInvalidQuantity)
}

func TestTransactionService_Add_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pub := newTestTxSvc(t, ctrl)
	ctx := context.Background()

	in := []models.Transaction{backendTx("a")}
	repo.EXPECT().Create(ctx, "", in).Return(store.CreateResult{Created: in}, nil)
	pub.EXPECT().PublishSaleRecorded(ctx, gomock.Any()).Return(errors.New("channel closed"))

	got, err := svc.Add(ctx, in)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTransactionService_Add_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTxSvc(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.CreateResult{}, store.ErrExecutingStatement)

	_, err := svc.Add(context.Background(), []models.Transaction{backendTx("a")})
	require.ErrorIs(t, err, store.ErrExecutingStatement)
}

// ── Sync ──

func TestTransactionService_Sync_AcksCreatedAndExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pub := newTestTxSvc(t, ctrl)
	ctx := context.Background()

	in := []models.Transaction{backendTx("a"), backendTx("b"), backendTx("c")}

	repo.EXPECT().Create(ctx, "", in).Return(store.CreateResult{
		Created:  []models.Transaction{backendTx("c"), backendTx("a")},
		Existing: []string{"b"},
	}, nil)
	pub.EXPECT().PublishSaleRecorded(ctx, gomock.Any()).Return(nil).Times(2)

	acked, err := svc.Sync(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, acked, "acks follow submission order")
}

func TestTransactionService_Sync_DuplicateIDsInBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, pub := newTestTxSvc(t, ctrl)
	ctx := context.Background()

	in := []models.Transaction{backendTx("a"), backendTx("a")}

	repo.EXPECT().Create(ctx, "", in).Return(store.CreateResult{
		Created:  []models.Transaction{backendTx("a")},
		Existing: []string{"a"},
	}, nil)
	pub.EXPECT().PublishSaleRecorded(ctx, gomock.Any()).Return(nil)

	acked, err := svc.Sync(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, acked)
}

func TestTransactionService_Sync_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestTxSvc(t, ctrl)

	_, err := svc.Sync(context.Background(), []models.Transaction{})
	require.ErrorIs(t, err, validators.ErrEmptyTransactions)
}

// ── List ──

func TestTransactionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTxSvc(t, ctrl)
	now := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	filter := models.TransactionsFilter{Days: 7}
	want := []models.Transaction{backendTx("a")}
	repo.EXPECT().List(ctx, filter, now).Return(want, nil)

	got, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Stats ──

func TestTransactionService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTxSvc(t, ctrl)
	now := time.Date(2026, 2, 4, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	dayStart := stats.DayStart(now)
	todays := []models.Transaction{backendTx("a")}

	repo.EXPECT().Summarize(ctx, dayStart).Return(models.PeriodStats{Total: decimal.NewFromInt(5), Count: 1}, nil)
	repo.EXPECT().Summarize(ctx, stats.WeekStart(now)).Return(models.PeriodStats{Total: decimal.NewFromInt(30), Count: 6}, nil)
	repo.EXPECT().List(ctx, models.TransactionsFilter{Start: &dayStart}, now).Return(todays, nil)

	got, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Daily.Count)
	assert.Equal(t, todays, got.Daily.Transactions)
	assert.Equal(t, 6, got.Weekly.Count)
	assert.Zero(t, got.Pending)
}

func TestTransactionService_Stats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestTxSvc(t, ctrl)

	repo.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return(models.PeriodStats{}, store.ErrExecutingQuery)

	_, err := svc.Stats(context.Background())
	require.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestNewTransactionService_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTransactionRepository(ctrl)
	svc := NewTransactionService(repo, validators.NewTransactionValidator(), nil, logger.Nop())

	in := []models.Transaction{backendTx("a")}
	repo.EXPECT().Create(gomock.Any(), "", in).Return(store.CreateResult{Created: in}, nil)

	_, err := svc.Add(context.Background(), in)
	require.NoError(t, err)
}
