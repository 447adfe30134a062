package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func record(kind OperationKind, amount string) *OperationRecord {
	return &OperationRecord{Kind: kind, Amount: dec(amount)}
}

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		name        string
		balance     Balance
		locked      bool
		prior       *OperationRecord
		event       EventType
		amount      decimal.Decimal
		wantErr     error
		wantMode    ResultMode
		wantBalance Balance
		wantLocked  bool
		wantRecord  OperationRecord
	}{
		{
			name:        "deposit appends regular deposit",
			balance:     Balance{Available: dec("10"), Held: dec("2")},
			event:       EventDeposit,
			amount:      dec("5"),
			wantMode:    Append,
			wantBalance: Balance{Available: dec("15"), Held: dec("2")},
			wantRecord:  OperationRecord{Kind: OpRegularDeposit, Amount: dec("5")},
		},
		{
			name:        "withdrawal within available funds",
			balance:     Balance{Available: dec("10"), Held: dec("0")},
			event:       EventWithdrawal,
			amount:      dec("4"),
			wantMode:    Append,
			wantBalance: Balance{Available: dec("6"), Held: dec("0")},
			wantRecord:  OperationRecord{Kind: OpAfterWithdrawal},
		},
		{
			name:        "withdrawal of exact available balance",
			balance:     Balance{Available: dec("10"), Held: dec("0")},
			event:       EventWithdrawal,
			amount:      dec("10"),
			wantMode:    Append,
			wantBalance: Balance{Available: dec("0"), Held: dec("0")},
			wantRecord:  OperationRecord{Kind: OpAfterWithdrawal},
		},
		{
			name:    "withdrawal exceeding available funds",
			balance: Balance{Available: dec("10"), Held: dec("0")},
			event:   EventWithdrawal,
			amount:  dec("10.0001"),
			wantErr: ErrInsufficientFunds,
		},
		{
			name:        "dispute moves deposit to held",
			balance:     Balance{Available: dec("10"), Held: dec("0")},
			prior:       record(OpRegularDeposit, "6"),
			event:       EventDispute,
			wantMode:    Modify,
			wantBalance: Balance{Available: dec("4"), Held: dec("6")},
			wantRecord:  OperationRecord{Kind: OpDisputedDeposit, Amount: dec("6")},
		},
		{
			name:        "resolve returns held funds to available",
			balance:     Balance{Available: dec("4"), Held: dec("6")},
			prior:       record(OpDisputedDeposit, "6"),
			event:       EventResolve,
			wantMode:    Modify,
			wantBalance: Balance{Available: dec("10"), Held: dec("0")},
			wantRecord:  OperationRecord{Kind: OpRegularDeposit, Amount: dec("6")},
		},
		{
			name:        "chargeback removes held funds and locks",
			balance:     Balance{Available: dec("4"), Held: dec("6")},
			prior:       record(OpDisputedDeposit, "6"),
			event:       EventChargeback,
			wantMode:    Modify,
			wantBalance: Balance{Available: dec("4"), Held: dec("0")},
			wantLocked:  true,
			wantRecord:  OperationRecord{Kind: OpFinalDeposit},
		},
		{
			name:    "locked account rejects deposits",
			balance: Balance{Available: dec("4"), Held: dec("0")},
			locked:  true,
			event:   EventDeposit,
			amount:  dec("1"),
			wantErr: ErrAccountLocked,
		},
		{
			name:    "locked account rejects disputes",
			balance: Balance{Available: dec("4"), Held: dec("0")},
			locked:  true,
			prior:   record(OpRegularDeposit, "4"),
			event:   EventDispute,
			wantErr: ErrAccountLocked,
		},
		{
			name:    "dispute of already disputed deposit",
			balance: Balance{Available: dec("4"), Held: dec("6")},
			prior:   record(OpDisputedDeposit, "6"),
			event:   EventDispute,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "dispute of charged back deposit",
			balance: Balance{Available: dec("4"), Held: dec("0")},
			prior:   &OperationRecord{Kind: OpFinalDeposit},
			event:   EventDispute,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "dispute of withdrawal",
			balance: Balance{Available: dec("4"), Held: dec("0")},
			prior:   &OperationRecord{Kind: OpAfterWithdrawal},
			event:   EventDispute,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "resolve of undisputed deposit",
			balance: Balance{Available: dec("10"), Held: dec("0")},
			prior:   record(OpRegularDeposit, "6"),
			event:   EventResolve,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "chargeback of undisputed deposit",
			balance: Balance{Available: dec("10"), Held: dec("0")},
			prior:   record(OpRegularDeposit, "6"),
			event:   EventChargeback,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "deposit with a referenced record",
			balance: Balance{Available: dec("10"), Held: dec("0")},
			prior:   record(OpRegularDeposit, "6"),
			event:   EventDeposit,
			amount:  dec("1"),
			wantErr: ErrIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Transition(tt.balance, tt.locked, tt.prior, tt.event, tt.amount)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.Mode != tt.wantMode {
				t.Errorf("expected mode %v, got %v", tt.wantMode, res.Mode)
			}
			if !res.Balance.Available.Equal(tt.wantBalance.Available) {
				t.Errorf("expected available %s, got %s", tt.wantBalance.Available, res.Balance.Available)
			}
			if !res.Balance.Held.Equal(tt.wantBalance.Held) {
				t.Errorf("expected held %s, got %s", tt.wantBalance.Held, res.Balance.Held)
			}
			if res.Locked != tt.wantLocked {
				t.Errorf("expected locked %v, got %v", tt.wantLocked, res.Locked)
			}
			if res.Record.Kind != tt.wantRecord.Kind {
				t.Errorf("expected record kind %v, got %v", tt.wantRecord.Kind, res.Record.Kind)
			}
			if !res.Record.Amount.Equal(tt.wantRecord.Amount) {
				t.Errorf("expected record amount %s, got %s", tt.wantRecord.Amount, res.Record.Amount)
			}
		})
	}
}

func TestTransition_ChargebackMayDriveAvailableNegative(t *testing.T) {
	// Deposit disputed after its funds were withdrawn: the dispute already
	// pushed available below zero and the chargeback keeps it there.
	res, err := Transition(Balance{Available: dec("-2"), Held: dec("5")}, false,
		record(OpDisputedDeposit, "5"), EventChargeback, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Balance.Available.Equal(dec("-2")) {
		t.Errorf("expected available -2, got %s", res.Balance.Available)
	}
	if !res.Balance.Held.IsZero() {
		t.Errorf("expected held 0, got %s", res.Balance.Held)
	}
	if !res.Locked {
		t.Error("expected account to be locked")
	}
}

func TestTransition_DoesNotMutateInputs(t *testing.T) {
	bal := Balance{Available: dec("10"), Held: dec("3")}
	prior := record(OpRegularDeposit, "6")

	if _, err := Transition(bal, false, prior, EventDispute, decimal.Zero); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bal.Available.Equal(dec("10")) || !bal.Held.Equal(dec("3")) {
		t.Errorf("balance mutated: %+v", bal)
	}
	if prior.Kind != OpRegularDeposit || !prior.Amount.Equal(dec("6")) {
		t.Errorf("referenced record mutated: %+v", prior)
	}
}
