package domain

import "github.com/shopspring/decimal"

// Balance holds a client's available and held funds.
type Balance struct {
	Available decimal.Decimal
	Held      decimal.Decimal
}

// Total returns available plus held.
func (b Balance) Total() decimal.Decimal {
	return b.Available.Add(b.Held)
}

// Account is one client's balance state plus the oplog of every deposit
// and withdrawal it has ever accepted. A transaction id appears at most
// once in the oplog for the lifetime of the account, and records are
// never deleted. Once Locked is set no further mutation occurs.
type Account struct {
	Balance Balance
	Locked  bool
	Oplog   map[uint32]OperationRecord
}

// NewAccount returns an empty open account.
func NewAccount() *Account {
	return &Account{
		Oplog: make(map[uint32]OperationRecord),
	}
}

// Commit applies a transition result to the account: the new balance and
// lock state always take effect, and the result's record is inserted or
// overwritten under txID. For a modify result whose key is absent the
// record change is dropped while the state still updates; Commit reports
// false so the caller can flag it, since the dispatcher's lookup should
// make that unreachable.
func (a *Account) Commit(txID uint32, res TransitionResult) bool {
	a.Balance = res.Balance
	a.Locked = res.Locked

	switch res.Mode {
	case Append:
		a.Oplog[txID] = res.Record
		return true
	case Modify:
		if _, ok := a.Oplog[txID]; !ok {
			return false
		}
		a.Oplog[txID] = res.Record
		return true
	default:
		return false
	}
}
