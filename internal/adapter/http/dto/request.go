package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
)

var ErrAmountRequired = errors.New("amount is required for this transaction type")

// TransactionRequest is the payload for submitting one transaction event.
type TransactionRequest struct {
	Type   string           `json:"type"`
	Client uint16           `json:"client"`
	Tx     uint32           `json:"tx"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// ToDomain converts the request into a domain transaction. The amount is
// mandatory for deposits and withdrawals and ignored otherwise, mirroring
// the CSV input rules.
func (r TransactionRequest) ToDomain() (domain.Transaction, error) {
	tx := domain.Transaction{
		Type:   domain.EventType(r.Type),
		Client: r.Client,
		TxID:   r.Tx,
	}

	if tx.Type.RequiresAmount() {
		if r.Amount == nil {
			return domain.Transaction{}, ErrAmountRequired
		}
		tx.Amount = *r.Amount
	}

	return tx, nil
}
