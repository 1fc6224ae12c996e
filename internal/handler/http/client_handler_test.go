package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/mock"
	"github.com/MKhiriev/pos-lite/internal/service"
	"github.com/MKhiriev/pos-lite/internal/store"
	"github.com/MKhiriev/pos-lite/internal/validators"
	"github.com/MKhiriev/pos-lite/models"
)

type clientMocks struct {
	local *mock.MockLocalTransactionService
	sync  *mock.MockClientSyncService
}

func newTestClientRouter(t *testing.T) (http.Handler, clientMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := clientMocks{
		local: mock.NewMockLocalTransactionService(ctrl),
		sync:  mock.NewMockClientSyncService(ctrl),
	}

	h := NewClientHandler(&service.ClientServices{
		TransactionService: m.local,
		SyncService:        m.sync,
	}, "0.3.1", logger.Nop())

	return h.Init(), m
}

// ── /api/status ──

func TestClientHandler_Status(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{State: models.SyncStateOnlineIdle, Online: true, Pending: 2}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"online_idle","online":true,"pending":2,"version":"0.3.1"}`, rec.Body.String())
}

func TestClientHandler_Status_StoreDown(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.sync.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{}, fmt.Errorf("%w: locked", service.ErrStoreUnavailable))

	rec := doRequest(t, router, http.MethodGet, "/api/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ── /api/sales ──

func TestClientHandler_RecordSale(t *testing.T) {
	router, m := newTestClientRouter(t)

	want := models.NewSale{ProductName: "Tea", Amount: decimal.RequireFromString("2.5"), Quantity: 2, PaymentType: "cash"}
	m.local.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, sale models.NewSale) (models.Transaction, error) {
		assert.Equal(t, want.ProductName, sale.ProductName)
		assert.True(t, want.Amount.Equal(sale.Amount))
		return models.Transaction{LocalID: "new-id", ProductName: models.StrPtr("Tea"), Amount: sale.Amount, Quantity: 2}, nil
	})

	rec := doRequest(t, router, http.MethodPost, "/api/sales", `{"product_name":"Tea","amount":2.5,"quantity":2,"payment_type":"cash"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new-id", got.LocalID)
	assert.False(t, got.Synced)
}

func TestClientHandler_RecordSale_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"invalid sale", `{"product_name":""}`, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyProductName), http.StatusBadRequest},
		{"duplicate", `{"product_name":"Tea"}`, fmt.Errorf("%w: x", store.ErrDuplicateKey), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestClientRouter(t)
			if tt.err != nil {
				m.local.EXPECT().Record(gomock.Any(), gomock.Any()).Return(models.Transaction{}, tt.err)
			}

			rec := doRequest(t, router, http.MethodPost, "/api/sales", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestClientHandler_ListSales(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.local.EXPECT().GetAll(gomock.Any()).Return([]models.Transaction{{LocalID: "b"}, {LocalID: "a", Synced: true}}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/sales", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.TransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Count)
	assert.True(t, got.Transactions[1].Synced)
}

func TestClientHandler_DeleteSale(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.local.EXPECT().Delete(gomock.Any(), "0190-abc").Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/sales/0190-abc", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ── /api/stats ──

func TestClientHandler_Stats(t *testing.T) {
	router, m := newTestClientRouter(t)

	combined := models.Stats{Daily: models.PeriodStats{Total: decimal.NewFromInt(5), Count: 1}, Pending: 3}
	local := models.Stats{Weekly: models.PeriodStats{Total: decimal.NewFromInt(9), Count: 4}}
	m.sync.EXPECT().CombinedStats(gomock.Any()).Return(combined, nil)
	m.local.EXPECT().Stats(gomock.Any()).Return(local, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily":{"total":5,"count":1},"weekly":{"total":0,"count":0},"pending":3}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/stats/local", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily":{"total":0,"count":0},"weekly":{"total":9,"count":4},"pending":0}`, rec.Body.String())
}

// ── /api/sync ──

func TestClientHandler_TriggerSync(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.sync.EXPECT().Reconcile(gomock.Any()).Return(models.SyncReport{
		Mode:      models.SyncModeBulk,
		Attempted: 2,
		SyncedIDs: []string{"a", "b"},
		FailedIDs: []string{},
	}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/sync", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.SyncReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"a", "b"}, got.SyncedIDs)
	assert.Equal(t, models.SyncModeBulk, got.Mode)
}

func TestClientHandler_TriggerSync_StoreError(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.sync.EXPECT().Reconcile(gomock.Any()).Return(models.SyncReport{}, fmt.Errorf("%w: disk", store.ErrExecutingStatement))

	rec := doRequest(t, router, http.MethodPost, "/api/sync", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── /api/backend/transactions ──

func TestClientHandler_BackendTransactions(t *testing.T) {
	router, m := newTestClientRouter(t)
	m.sync.EXPECT().FetchBackendTransactions(gomock.Any(), 0).Return([]models.Transaction{})
	m.sync.EXPECT().FetchBackendTransactions(gomock.Any(), 30).Return([]models.Transaction{{LocalID: "x"}})

	rec := doRequest(t, router, http.MethodGet, "/api/backend/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"transactions":[],"count":0}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/backend/transactions?days=30", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	rec = doRequest(t, router, http.MethodGet, "/api/backend/transactions?days=week", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
