package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/payengine/internal/adapter/http/dto"
	"github.com/iho/payengine/internal/domain"
)

// LedgerService defines the behavior needed by TransactionHandler.
type LedgerService interface {
	Apply(ctx context.Context, tx domain.Transaction) error
}

// TransactionHandler handles transaction submission.
type TransactionHandler struct {
	ledger LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// Create applies one transaction event to the ledger.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction", err.Error())
		return
	}

	if err := h.ledger.Apply(r.Context(), tx); err != nil {
		writeError(w, mapDomainError(err), "transaction rejected", err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"client": tx.Client,
		"tx":     tx.TxID,
		"status": "applied",
	})
}
