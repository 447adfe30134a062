package domain

import "github.com/shopspring/decimal"

// EventType is the external label of an incoming transaction event.
// Unrecognized labels are carried through and rejected by the dispatcher,
// not at the framing layer.
type EventType string

const (
	EventDeposit    EventType = "deposit"
	EventWithdrawal EventType = "withdrawal"
	EventDispute    EventType = "dispute"
	EventResolve    EventType = "resolve"
	EventChargeback EventType = "chargeback"
)

// RequiresAmount reports whether rows of this type must carry an amount.
func (t EventType) RequiresAmount() bool {
	return t == EventDeposit || t == EventWithdrawal
}

// ReferencesPrior reports whether the event targets an existing oplog
// record instead of creating a new one.
func (t EventType) ReferencesPrior() bool {
	return t == EventDispute || t == EventResolve || t == EventChargeback
}

// Transaction is one incoming event together with its routing ids.
// Amount is zero for events that reference a prior transaction; the
// referenced record carries the authoritative amount.
type Transaction struct {
	Type   EventType
	Client uint16
	TxID   uint32
	Amount decimal.Decimal
}
