package domain

import "errors"

var (
	// Account errors
	ErrAccountLocked   = errors.New("account is locked")
	ErrAccountNotFound = errors.New("account not found")

	// Transaction errors
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrDuplicateTransaction   = errors.New("duplicate transaction id")
	ErrTransactionNotFound    = errors.New("transaction not found in log")
	ErrIllegalTransition      = errors.New("illegal state transition")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)
