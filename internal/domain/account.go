package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side identifies which column of the ledger a posting or balance falls on.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// Opposite returns the other side of the ledger.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}

	return Debit
}

// Kind classifies an account into one of the five fundamental account types.
type Kind string

const (
	Asset     Kind = "asset"
	Liability Kind = "liability"
	Equity    Kind = "equity"
	Revenue   Kind = "revenue"
	Expense   Kind = "expense"
)

// Kinds lists all account kinds in accounting-equation order.
var Kinds = []Kind{Asset, Liability, Equity, Revenue, Expense}

// Valid reports whether k is one of the five account kinds.
func (k Kind) Valid() bool {
	switch k {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}

	return false
}

// NormalSide returns the side on which balances of this kind normally increase.
func (k Kind) NormalSide() Side {
	switch k {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}

// Account represents a named, numbered ledger account.
type Account struct {
	ID        string
	Name      string
	Number    string
	Kind      Kind
	Contra    bool
	CreatedAt time.Time
}

// EffectiveSide returns the side used for balance sign computation.
// Contra accounts invert the normal side of their kind.
func (a *Account) EffectiveSide() Side {
	side := a.Kind.NormalSide()
	if a.Contra {
		return side.Opposite()
	}

	return side
}

// Balance applies the account's sign convention to pre-aggregated
// debit and credit sums.
func (a *Account) Balance(debits, credits decimal.Decimal) decimal.Decimal {
	if a.EffectiveSide() == Credit {
		return credits.Sub(debits)
	}

	return debits.Sub(credits)
}

// Validate checks account invariants that do not require storage access.
// Name and number uniqueness is enforced by the repository.
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrMissingAccountName
	}

	if a.Number == "" {
		return ErrMissingAccountNumber
	}

	if !a.Kind.Valid() {
		return ErrInvalidKind
	}

	return nil
}
