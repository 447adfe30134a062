package domain

import "github.com/shopspring/decimal"

// ResultMode says how a transition result changes the oplog.
type ResultMode int

const (
	// Append inserts a new record under the transaction id.
	Append ResultMode = iota
	// Modify overwrites the record the event referenced.
	Modify
)

// TransitionResult is the outcome of a legal transition: the account state
// to install and the oplog record to append or overwrite. Callers commit
// it atomically via Account.Commit.
type TransitionResult struct {
	Mode    ResultMode
	Balance Balance
	Locked  bool
	Record  OperationRecord
}

// Transition is the account state machine. It maps the current account
// state, the oplog record the event references (nil for deposit and
// withdrawal) and the incoming event to a result, or rejects the event.
// It performs no mutation; on rejection the account is untouched.
//
// Legal transitions:
//
//	open,  nil record,       deposit     -> append regular_deposit,  available += amount
//	open,  nil record,       withdrawal  -> append after_withdrawal, available -= amount (if amount <= available)
//	open,  regular_deposit,  dispute     -> modify disputed_deposit, available -= amount, held += amount
//	open,  disputed_deposit, resolve     -> modify regular_deposit,  available += amount, held -= amount
//	open,  disputed_deposit, chargeback  -> modify final_deposit,    held -= amount, account locked
//
// A locked account rejects everything; every other combination falls
// through to ErrIllegalTransition. There is deliberately no entry for
// disputing an after_withdrawal record: only deposits can be disputed.
// A chargeback does not re-check non-negativity, so available may go
// negative if the disputed funds were already withdrawn.
func Transition(bal Balance, locked bool, prior *OperationRecord, event EventType, amount decimal.Decimal) (TransitionResult, error) {
	if locked {
		return TransitionResult{}, ErrAccountLocked
	}

	switch {
	case prior == nil && event == EventDeposit:
		return TransitionResult{
			Mode:    Append,
			Balance: Balance{Available: bal.Available.Add(amount), Held: bal.Held},
			Record:  OperationRecord{Kind: OpRegularDeposit, Amount: amount},
		}, nil

	case prior == nil && event == EventWithdrawal:
		if amount.GreaterThan(bal.Available) {
			return TransitionResult{}, ErrInsufficientFunds
		}
		return TransitionResult{
			Mode:    Append,
			Balance: Balance{Available: bal.Available.Sub(amount), Held: bal.Held},
			Record:  OperationRecord{Kind: OpAfterWithdrawal},
		}, nil

	case prior != nil && prior.Kind == OpRegularDeposit && event == EventDispute:
		amt := prior.Amount
		return TransitionResult{
			Mode:    Modify,
			Balance: Balance{Available: bal.Available.Sub(amt), Held: bal.Held.Add(amt)},
			Record:  OperationRecord{Kind: OpDisputedDeposit, Amount: amt},
		}, nil

	case prior != nil && prior.Kind == OpDisputedDeposit && event == EventResolve:
		amt := prior.Amount
		return TransitionResult{
			Mode:    Modify,
			Balance: Balance{Available: bal.Available.Add(amt), Held: bal.Held.Sub(amt)},
			Record:  OperationRecord{Kind: OpRegularDeposit, Amount: amt},
		}, nil

	case prior != nil && prior.Kind == OpDisputedDeposit && event == EventChargeback:
		amt := prior.Amount
		return TransitionResult{
			Mode:    Modify,
			Balance: Balance{Available: bal.Available, Held: bal.Held.Sub(amt)},
			Locked:  true,
			Record:  OperationRecord{Kind: OpFinalDeposit},
		}, nil

	default:
		return TransitionResult{}, ErrIllegalTransition
	}
}
