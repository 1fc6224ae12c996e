// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pos-lite/internal/config"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/models"
)

func newTestAdapter(t *testing.T, serverURL string, app config.ClientApp) BackendAdapter {
	t.Helper()

	a, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, app, logger.Nop())
	require.NoError(t, err)
	return a
}

func sampleTx(localID string) models.Transaction {
	return models.Transaction{
		LocalID:     localID,
		ProductName: models.StrPtr("Coffee"),
		Amount:      decimal.RequireFromString("3.5"),
		Quantity:    2,
		PaymentType: models.StrPtr("cash"),
		Timestamp:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──

func TestNewHTTPBackendAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{"full url", "http://localhost:5000", false},
		{"host and port", "localhost:5000", false},
		{"trailing slash", "http://localhost:5000/", false},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: tt.address}, config.ClientApp{}, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ── Ping ──

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.StatusResponse{Message: "MobilePOS Lite API", Status: "online"})
	}))
	defer srv.Close()

	status, err := newTestAdapter(t, srv.URL, config.ClientApp{}).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "online", status.Status)
}

func TestPing_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, config.ClientApp{}).Ping(context.Background())
	require.ErrorIs(t, err, ErrInternalServerError)
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, config.ClientApp{}).Ping(context.Background())
	require.ErrorIs(t, err, ErrBackendUnavailable)
}

// ── AddTransaction ──

func TestAddTransaction_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add", r.URL.Path)

		var got models.Transaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "a", got.LocalID)

		got.ID = 11
		got.Synced = true
		writeJSON(t, w, http.StatusCreated, models.AddResponse{Message: "Transaction added", Transactions: []models.Transaction{got}})
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, config.ClientApp{}).AddTransaction(context.Background(), sampleTx("a"))
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Data)
	assert.Equal(t, int64(11), res.Data.ID)
}

func TestAddTransaction_AlreadyStored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{"message": "Transaction added", "transactions": []any{}})
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, config.ClientApp{}).AddTransaction(context.Background(), sampleTx("a"))
	assert.True(t, res.Success)
	assert.Nil(t, res.Data)
}

func TestAddTransaction_ToleratesUnknownAndMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{"extra": 1})
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, config.ClientApp{}).AddTransaction(context.Background(), sampleTx("a"))
	assert.True(t, res.Success)
}

func TestAddTransaction_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"invalid"}`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"transactions":`))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res := newTestAdapter(t, srv.URL, config.ClientApp{}).AddTransaction(context.Background(), sampleTx("a"))
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
			assert.Nil(t, res.Data)
		})
	}
}

// ── SyncTransactions ──

func TestSyncTransactions_ExplicitAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sync", r.URL.Path)

		var req models.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Transactions, 2)

		writeJSON(t, w, http.StatusCreated, map[string]any{"message": "ok", "synced_ids": []string{"a"}})
	}))
	defer srv.Close()

	ids, err := newTestAdapter(t, srv.URL, config.ClientApp{}).
		SyncTransactions(context.Background(), []models.Transaction{sampleTx("a"), sampleTx("b")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestSyncTransactions_EmptyAck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{"synced_ids": []string{}})
	}))
	defer srv.Close()

	ids, err := newTestAdapter(t, srv.URL, config.ClientApp{}).
		SyncTransactions(context.Background(), []models.Transaction{sampleTx("a")})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSyncTransactions_MissingAckMeansAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, map[string]any{"message": "Synced"})
	}))
	defer srv.Close()

	ids, err := newTestAdapter(t, srv.URL, config.ClientApp{}).
		SyncTransactions(context.Background(), []models.Transaction{sampleTx("a"), sampleTx("b")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestSyncTransactions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrInternalServerError,
		},
		{
			name: "unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: ErrBackendUnavailable,
		},
		{
			name: "malformed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			ids, err := newTestAdapter(t, srv.URL, config.ClientApp{}).
				SyncTransactions(context.Background(), []models.Transaction{sampleTx("a")})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, ids)
		})
	}
}

func TestSyncTransactions_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPBackendAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)

	_, err = a.SyncTransactions(context.Background(), []models.Transaction{sampleTx("a")})
	require.ErrorIs(t, err, ErrBackendUnavailable)
}

// ── GetTransactions / GetStats ──

func TestGetTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		writeJSON(t, w, http.StatusOK, models.TransactionsResponse{Transactions: []models.Transaction{sampleTx("a")}, Count: 1})
	}))
	defer srv.Close()

	txs, err := newTestAdapter(t, srv.URL, config.ClientApp{}).GetTransactions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, decimal.RequireFromString("3.5").Equal(txs[0].Amount))
}

func TestGetTransactions_NullList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"transactions": nil, "count": 0})
	}))
	defer srv.Close()

	txs, err := newTestAdapter(t, srv.URL, config.ClientApp{}).GetTransactions(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestGetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"daily":{"total":12.5,"count":2},"weekly":{"total":40,"count":6},"pending":0}`))
	}))
	defer srv.Close()

	stats, err := newTestAdapter(t, srv.URL, config.ClientApp{}).GetStats(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(stats.Daily.Total))
	assert.Equal(t, 6, stats.Weekly.Count)
}

func TestGetStats_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, config.ClientApp{}).GetStats(context.Background())
	require.ErrorIs(t, err, ErrMalformedResponse)
}

// ── auth and integrity headers ──

func TestRequests_CarryTokenAndHash(t *testing.T) {
	app := config.ClientApp{
		TerminalID:    "till-7",
		TokenSignKey:  "sign-key",
		TokenIssuer:   "pos-lite",
		TokenDuration: time.Hour,
		HashKey:       "hash-key",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		require.NoError(t, err)

		token, err := utils.ValidateTerminalToken(raw, app.TokenSignKey, app.TokenIssuer)
		require.NoError(t, err)
		assert.Equal(t, "till-7", token.TerminalID)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.HashString(body, app.HashKey), r.Header.Get(utils.HashHeader))

		writeJSON(t, w, http.StatusCreated, map[string]any{"synced_ids": []string{"a"}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, app).SyncTransactions(context.Background(), []models.Transaction{sampleTx("a")})
	require.NoError(t, err)
}

func TestRequests_NoAuthByDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get(utils.HashHeader))
		writeJSON(t, w, http.StatusOK, models.StatusResponse{Status: "online"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, config.ClientApp{}).Ping(context.Background())
	require.NoError(t, err)
}
