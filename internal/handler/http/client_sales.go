package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/pos-lite/internal/logger"
	"github.com/MKhiriev/pos-lite/internal/utils"
	"github.com/MKhiriev/pos-lite/models"
)

func (h *ClientHandler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.SyncService.Status(r.Context())
	if err != nil {
		h.writeError(w, r, "ClientHandler.getStatus", err)
		return
	}
	status.Version = h.version

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *ClientHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var sale models.NewSale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "ClientHandler.recordSale").Msg("invalid request body")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.services.TransactionService.Record(r.Context(), sale)
	if err != nil {
		h.writeError(w, r, "ClientHandler.recordSale", err)
		return
	}

	utils.WriteJSON(w, tx, http.StatusCreated)
}

func (h *ClientHandler) listSales(w http.ResponseWriter, r *http.Request) {
	txs, err := h.services.TransactionService.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, "ClientHandler.listSales", err)
		return
	}

	utils.WriteJSON(w, models.TransactionsResponse{Transactions: txs, Count: len(txs)}, http.StatusOK)
}

func (h *ClientHandler) deleteSale(w http.ResponseWriter, r *http.Request) {
	localID := chi.URLParam(r, "localID")

	if err := h.services.TransactionService.Delete(r.Context(), localID); err != nil {
		h.writeError(w, r, "ClientHandler.deleteSale", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) getCombinedStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.SyncService.CombinedStats(r.Context())
	if err != nil {
		h.writeError(w, r, "ClientHandler.getCombinedStats", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *ClientHandler) getLocalStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.TransactionService.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, "ClientHandler.getLocalStats", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// triggerSync runs one reconciliation pass and reports its outcome. A pass
// that is skipped (offline, already running) still answers 200.
func (h *ClientHandler) triggerSync(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.SyncService.Reconcile(r.Context())
	if err != nil {
		h.writeError(w, r, "ClientHandler.triggerSync", err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *ClientHandler) listBackendTransactions(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.WriteError(w, "days must be a non-negative integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	txs := h.services.SyncService.FetchBackendTransactions(r.Context(), days)
	utils.WriteJSON(w, models.TransactionsResponse{Transactions: txs, Count: len(txs)}, http.StatusOK)
}

func (h *ClientHandler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Send()
	utils.WriteError(w, messageFromError(err, status), status)
}
