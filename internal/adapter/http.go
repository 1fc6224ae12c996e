package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/pos-lite/internal/config"
	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/models"
)

// tokenRefreshMargin is how long before expiry a cached token is replaced.
const tokenRefreshMargin = time.Minute

type httpBackendAdapter struct {
	client *utils.HTTPClient

	app config.ClientApp

	mu    sync.Mutex
	token models.TerminalToken

	logger *logger.Logger
}

// NewHTTPBackendAdapter builds the resty-backed [BackendAdapter]. The base
// URL comes from adapterCfg.HTTPAddress ("host:port" gets an http:// scheme).
// When appCfg.TokenSignKey is set every request carries a terminal bearer
// token; when appCfg.HashKey is set request bodies are signed in the
// HashSHA256 header.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBackendAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		app:    appCfg,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) Ping(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.request(ctx).Get("/")
	if err != nil {
		return status, fmt.Errorf("%w: ping request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return status, err
	}

	// the probe only cares about the status code
	_ = json.Unmarshal(resp.Body(), &status)
	return status, nil
}

func (h *httpBackendAdapter) AddTransaction(ctx context.Context, tx models.Transaction) models.AddResult {
	req, err := h.jsonRequest(ctx, tx)
	if err != nil {
		return models.AddResult{Error: err.Error()}
	}

	resp, err := req.Post("/add")
	if err != nil {
		return models.AddResult{Error: fmt.Errorf("%w: add request: %w", ErrBackendUnavailable, err).Error()}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AddResult{Error: err.Error()}
	}

	var body models.AddResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.AddResult{Error: fmt.Errorf("%w: %w", ErrMalformedResponse, err).Error()}
	}

	result := models.AddResult{Success: true}
	for i := range body.Transactions {
		if body.Transactions[i].LocalID == tx.LocalID {
			result.Data = &body.Transactions[i]
			break
		}
	}

	return result
}

func (h *httpBackendAdapter) SyncTransactions(ctx context.Context, txs []models.Transaction) ([]string, error) {
	req, err := h.jsonRequest(ctx, models.SyncRequest{Transactions: txs})
	if err != nil {
		return nil, err
	}

	resp, err := req.Post("/sync")
	if err != nil {
		return nil, fmt.Errorf("%w: sync request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if body.SyncedIDs == nil {
		ids := make([]string, 0, len(txs))
		for _, tx := range txs {
			ids = append(ids, tx.LocalID)
		}
		return ids, nil
	}

	return *body.SyncedIDs, nil
}

func (h *httpBackendAdapter) GetTransactions(ctx context.Context, days int) ([]models.Transaction, error) {
	var body models.TransactionsResponse

	resp, err := h.request(ctx).
		SetQueryParam("days", strconv.Itoa(days)).
		Get("/transactions")
	if err != nil {
		return nil, fmt.Errorf("%w: transactions request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if body.Transactions == nil {
		body.Transactions = make([]models.Transaction, 0)
	}

	return body.Transactions, nil
}

func (h *httpBackendAdapter) GetStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	resp, err := h.request(ctx).Get("/stats")
	if err != nil {
		return stats, fmt.Errorf("%w: stats request: %w", ErrBackendUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return stats, err
	}

	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.Stats{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return stats, nil
}

// request returns a resty request bound to ctx with the bearer token set
// when terminal authentication is configured.
func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	token, err := h.bearer()
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "httpBackendAdapter.request").
			Msg("sending request without terminal token")
		return req
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}

// jsonRequest marshals payload up front so the exact bytes on the wire can
// be signed.
func (h *httpBackendAdapter) jsonRequest(ctx context.Context, payload any) (*resty.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.app.HashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashString(body, h.app.HashKey))
	}

	return req, nil
}

func (h *httpBackendAdapter) bearer() (string, error) {
	if h.app.TokenSignKey == "" {
		return "", nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && h.token.ExpiresAt != nil &&
		time.Until(h.token.ExpiresAt.Time) > tokenRefreshMargin {
		return h.token.SignedString, nil
	}

	token, err := utils.GenerateTerminalToken(h.app.TokenIssuer, h.app.TerminalID, h.app.TokenDuration, h.app.TokenSignKey)
	if err != nil {
		return "", err
	}
	h.token = token

	return token.SignedString, nil
}
