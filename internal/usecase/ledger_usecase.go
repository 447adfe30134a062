package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
	"github.com/iho/payengine/internal/infrastructure/metrics"
)

// AccountSnapshot is the reportable view of one account.
type AccountSnapshot struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// OperationView is the reportable view of one oplog record.
type OperationView struct {
	TxID   uint32
	Kind   string
	Amount decimal.Decimal
}

// RunStats summarizes one processing run.
type RunStats struct {
	Rows          int
	Applied       int
	Rejected      int
	ParseFailures int
}

// LedgerUseCase owns all accounts keyed by client id and dispatches
// incoming transactions against them. Accounts are created lazily on
// first reference and live for the process lifetime. Events apply
// strictly one at a time; the mutex keeps that true when transactions
// arrive over HTTP.
type LedgerUseCase struct {
	mu       sync.Mutex
	accounts map[uint16]*domain.Account
	logger   zerolog.Logger
}

// NewLedgerUseCase creates an empty ledger.
func NewLedgerUseCase(logger zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		accounts: make(map[uint16]*domain.Account),
		logger:   logger,
	}
}

// Apply validates one transaction against its account and commits the
// outcome. Every returned error is row-local: the account is left exactly
// as it was before the call.
func (uc *LedgerUseCase) Apply(ctx context.Context, tx domain.Transaction) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	acct := uc.account(tx.Client)

	res, err := uc.dispatch(acct, tx)
	if err != nil {
		metrics.RecordRejected(rejectionReason(err))
		return err
	}

	wasLocked := acct.Locked
	if !acct.Commit(tx.TxID, res) {
		uc.logger.Debug().
			Uint16("client", tx.Client).
			Uint32("tx", tx.TxID).
			Msg("modify dropped: referenced oplog record vanished")
	}
	if res.Locked && !wasLocked {
		metrics.RecordAccountLocked()
	}
	metrics.RecordApplied(string(tx.Type))

	return nil
}

// dispatch enforces the id preconditions, fetches the referenced record
// when the event needs one and invokes the transition function.
func (uc *LedgerUseCase) dispatch(acct *domain.Account, tx domain.Transaction) (domain.TransitionResult, error) {
	switch tx.Type {
	case domain.EventDeposit, domain.EventWithdrawal:
		if _, exists := acct.Oplog[tx.TxID]; exists {
			return domain.TransitionResult{}, domain.ErrDuplicateTransaction
		}
		return domain.Transition(acct.Balance, acct.Locked, nil, tx.Type, tx.Amount)

	case domain.EventDispute, domain.EventResolve, domain.EventChargeback:
		rec, exists := acct.Oplog[tx.TxID]
		if !exists {
			return domain.TransitionResult{}, domain.ErrTransactionNotFound
		}
		return domain.Transition(acct.Balance, acct.Locked, &rec, tx.Type, decimal.Zero)

	default:
		return domain.TransitionResult{}, domain.ErrUnknownTransactionType
	}
}

// Run drains the source, applying each row and logging rejections.
// Failures never stop the run; they are counted and the next row is
// processed.
func (uc *LedgerUseCase) Run(ctx context.Context, src TransactionSource) RunStats {
	var stats RunStats

	for {
		tx, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		stats.Rows++

		if err != nil {
			stats.ParseFailures++
			metrics.RecordParseFailure()
			uc.logger.Warn().Err(err).Msg("skipping unparseable row")
			continue
		}

		if err := uc.Apply(ctx, tx); err != nil {
			stats.Rejected++
			uc.logger.Warn().
				Err(err).
				Str("type", string(tx.Type)).
				Uint16("client", tx.Client).
				Uint32("tx", tx.TxID).
				Msg("transaction rejected")
			continue
		}

		stats.Applied++
	}

	return stats
}

// Snapshots returns the final state of every account, sorted by client id
// for deterministic output.
func (uc *LedgerUseCase) Snapshots() []AccountSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]AccountSnapshot, 0, len(uc.accounts))
	for client, acct := range uc.accounts {
		out = append(out, snapshot(client, acct))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Client < out[j].Client })

	return out
}

// Snapshot returns the state of a single account. Reads never create
// accounts.
func (uc *LedgerUseCase) Snapshot(client uint16) (AccountSnapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	acct, ok := uc.accounts[client]
	if !ok {
		return AccountSnapshot{}, domain.ErrAccountNotFound
	}

	return snapshot(client, acct), nil
}

// Operations returns an account's oplog sorted by transaction id.
func (uc *LedgerUseCase) Operations(client uint16) ([]OperationView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	acct, ok := uc.accounts[client]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	out := make([]OperationView, 0, len(acct.Oplog))
	for txID, rec := range acct.Oplog {
		out = append(out, OperationView{
			TxID:   txID,
			Kind:   rec.Kind.String(),
			Amount: rec.Amount,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TxID < out[j].TxID })

	return out, nil
}

// WriteReport writes the final snapshots to the given sink.
func (uc *LedgerUseCase) WriteReport(w ReportWriter) error {
	return w.WriteReport(uc.Snapshots())
}

func (uc *LedgerUseCase) account(client uint16) *domain.Account {
	acct, ok := uc.accounts[client]
	if !ok {
		acct = domain.NewAccount()
		uc.accounts[client] = acct
		metrics.RecordAccountCreated()
	}
	return acct
}

func snapshot(client uint16, acct *domain.Account) AccountSnapshot {
	return AccountSnapshot{
		Client:    client,
		Available: acct.Balance.Available,
		Held:      acct.Balance.Held,
		Total:     acct.Balance.Total(),
		Locked:    acct.Locked,
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, domain.ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, domain.ErrUnknownTransactionType):
		return "unknown_type"
	default:
		return "other"
	}
}
