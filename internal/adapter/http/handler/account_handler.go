package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/payengine/internal/adapter/http/dto"
	"github.com/iho/payengine/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	Snapshots() []usecase.AccountSnapshot
	Snapshot(client uint16) (usecase.AccountSnapshot, error)
	Operations(client uint16) ([]usecase.OperationView, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	ledger AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger AccountService) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// List returns snapshots of every account, sorted by client id.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.AccountsFromSnapshots(h.ledger.Snapshots()))
}

// Get returns a single account snapshot.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, ok := clientParam(w, r)
	if !ok {
		return
	}

	snap, err := h.ledger.Snapshot(client)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromSnapshot(snap))
}

// Operations returns an account's oplog sorted by transaction id.
func (h *AccountHandler) Operations(w http.ResponseWriter, r *http.Request) {
	client, ok := clientParam(w, r)
	if !ok {
		return
	}

	ops, err := h.ledger.Operations(client)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get operations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OperationsFromViews(ops))
}

func clientParam(w http.ResponseWriter, r *http.Request) (uint16, bool) {
	raw := chi.URLParam(r, "client")
	client, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id", raw)
		return 0, false
	}
	return uint16(client), true
}
