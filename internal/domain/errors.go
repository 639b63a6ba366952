package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account name or number already taken")
	ErrInvalidKind          = errors.New("invalid account kind")
	ErrMissingAccountName   = errors.New("account name is required")
	ErrMissingAccountNumber = errors.New("account number is required")

	// Entry errors
	ErrEntryNotFound      = errors.New("entry not found")
	ErrMissingDescription = errors.New("entry description is required")
	ErrNoDebitAmounts     = errors.New("entry requires at least one debit amount")
	ErrNoCreditAmounts    = errors.New("entry requires at least one credit amount")
	ErrUnbalanced         = errors.New("debit and credit totals must be equal")

	// Amount errors
	ErrZeroAmount     = errors.New("amount must be greater than zero")
	ErrMissingAccount = errors.New("amount requires an account")
	ErrMissingEntry   = errors.New("amount requires an entry")
)
