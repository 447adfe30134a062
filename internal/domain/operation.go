package domain

import "github.com/shopspring/decimal"

// OperationKind classifies what an oplog record currently represents.
// Dispute, resolve and chargeback are only legal against a record in the
// exact prior kind, which is what makes replaying them safe.
type OperationKind int

const (
	// OpRegularDeposit is a deposit counted in available funds, either
	// fresh or returned there by a resolve.
	OpRegularDeposit OperationKind = iota
	// OpDisputedDeposit is a deposit currently held, awaiting a resolve
	// or a chargeback.
	OpDisputedDeposit
	// OpFinalDeposit is a deposit that has been charged back. Terminal.
	OpFinalDeposit
	// OpAfterWithdrawal is a completed withdrawal. Terminal, withdrawals
	// cannot be disputed.
	OpAfterWithdrawal
)

// String returns a human-readable name for the kind.
func (k OperationKind) String() string {
	switch k {
	case OpRegularDeposit:
		return "regular_deposit"
	case OpDisputedDeposit:
		return "disputed_deposit"
	case OpFinalDeposit:
		return "final_deposit"
	case OpAfterWithdrawal:
		return "after_withdrawal"
	default:
		return "unknown"
	}
}

// OperationRecord is the per-transaction state kept in an account's oplog.
// It holds enough history to validate and reverse later events that
// reference the same transaction id. Amount is zero for terminal kinds.
type OperationRecord struct {
	Kind   OperationKind
	Amount decimal.Decimal
}
