package ledger

import "errors"

var (
	// ErrAccountNotFound is returned when the sending address has no entry.
	ErrAccountNotFound = errors.New("sender account not found")
	// ErrInsufficientBalance is returned when the sender holds less than the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
