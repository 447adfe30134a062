package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}

// AccountFromSnapshot converts a ledger snapshot to a response.
func AccountFromSnapshot(s usecase.AccountSnapshot) *AccountResponse {
	return &AccountResponse{
		Client:    s.Client,
		Available: s.Available,
		Held:      s.Held,
		Total:     s.Total,
		Locked:    s.Locked,
	}
}

// AccountsFromSnapshots converts ledger snapshots to responses.
func AccountsFromSnapshots(snapshots []usecase.AccountSnapshot) []*AccountResponse {
	result := make([]*AccountResponse, len(snapshots))
	for i, s := range snapshots {
		result[i] = AccountFromSnapshot(s)
	}
	return result
}

// OperationResponse represents one oplog record in API responses.
type OperationResponse struct {
	Tx     uint32          `json:"tx"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// OperationsFromViews converts oplog views to responses.
func OperationsFromViews(views []usecase.OperationView) []*OperationResponse {
	result := make([]*OperationResponse, len(views))
	for i, v := range views {
		result[i] = &OperationResponse{Tx: v.TxID, Kind: v.Kind, Amount: v.Amount}
	}
	return result
}

// ErrorResponse is the error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
