package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/models"
)

// dateLayouts are tried in order for start_date and end_date. Layouts
// without a zone are read in the server's local time.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// addTransactions accepts a single transaction object or an array of them.
// Records whose local_id is already stored are skipped; the response lists
// only the newly created rows.
func (h *Handler) addTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	txs, err := decodeTransactions(r.Body)
	if err != nil {
		log.Warn().Err(err).Str("func", "Handler.addTransactions").Msg("invalid request body")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.TransactionService.Add(r.Context(), txs)
	if err != nil {
		h.writeServiceError(w, r, "Handler.addTransactions", err)
		return
	}

	utils.WriteJSON(w, models.AddResponse{
		Message:      fmt.Sprintf("Added %d transaction(s)", len(created)),
		Transactions: created,
	}, http.StatusCreated)
}

func (h *Handler) syncTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "Handler.syncTransactions").Msg("invalid request body")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	acked, err := h.services.TransactionService.Sync(r.Context(), req.Transactions)
	if err != nil {
		h.writeServiceError(w, r, "Handler.syncTransactions", err)
		return
	}

	utils.WriteJSON(w, models.SyncResponse{
		Message:   fmt.Sprintf("Synced %d transactions", len(acked)),
		SyncedIDs: &acked,
	}, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTransactionsFilter(r)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "Handler.listTransactions").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.services.TransactionService.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, "Handler.listTransactions", err)
		return
	}
	if txs == nil {
		txs = make([]models.Transaction, 0)
	}

	utils.WriteJSON(w, models.TransactionsResponse{Transactions: txs, Count: len(txs)}, http.StatusOK)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.TransactionService.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "Handler.getStats", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	ev := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.FromRequest(r).Error()
	}
	ev.Err(err).Str("func", funcName).Int("status", status).Send()

	utils.WriteError(w, messageFromError(err, status), status)
}

// decodeTransactions reads either one JSON object or an array of them.
func decodeTransactions(body io.Reader) ([]models.Transaction, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, ErrInvalidJSON
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var txs []models.Transaction
		if err = json.Unmarshal(raw, &txs); err != nil {
			return nil, ErrInvalidJSON
		}
		return txs, nil
	}

	var tx models.Transaction
	if err = json.Unmarshal(raw, &tx); err != nil {
		return nil, ErrInvalidJSON
	}
	return []models.Transaction{tx}, nil
}

// parseTransactionsFilter reads days, or start_date together with end_date.
// days wins when both are given.
func parseTransactionsFilter(r *http.Request) (models.TransactionsFilter, error) {
	q := r.URL.Query()
	var filter models.TransactionsFilter

	if raw := q.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return filter, fmt.Errorf("%w: days must be a non-negative integer", ErrInvalidDateRange)
		}
		filter.Days = days
		if days > 0 {
			return filter, nil
		}
	}

	rawStart, rawEnd := q.Get("start_date"), q.Get("end_date")
	if rawStart == "" || rawEnd == "" {
		return filter, nil
	}

	start, err := parseDate(rawStart)
	if err != nil {
		return filter, err
	}
	end, err := parseDate(rawEnd)
	if err != nil {
		return filter, err
	}
	if end.Before(start) {
		return filter, fmt.Errorf("%w: end_date is before start_date", ErrInvalidDateRange)
	}

	filter.Start, filter.End = &start, &end
	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidDateRange, raw)
}
