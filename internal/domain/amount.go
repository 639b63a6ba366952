package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a single debit or credit posting within an entry.
type Amount struct {
	ID         string
	Side       Side
	EntryID    string
	AccountID  string
	Amount     decimal.Decimal
	Accountee  Reference
	Context    Reference
	Subcontext Reference
	CreatedAt  time.Time
}

// Validate checks posting invariants. A zero amount is always rejected,
// never silently dropped.
func (a *Amount) Validate() error {
	if a.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrZeroAmount
	}

	if a.AccountID == "" {
		return ErrMissingAccount
	}

	if a.EntryID == "" {
		return ErrMissingEntry
	}

	return nil
}

// BalanceFilter restricts balance queries to postings matching its dimensions.
// A dimension participates only when its reference is fully specified; partial
// references are ignored. The zero filter matches every posting.
type BalanceFilter struct {
	Context    Reference
	Subcontext Reference
	Accountee  Reference
	Initiator  Reference
}

// IsZero reports whether no dimension of the filter is active.
func (f BalanceFilter) IsZero() bool {
	return !f.Context.Valid() && !f.Subcontext.Valid() &&
		!f.Accountee.Valid() && !f.Initiator.Valid()
}

// Matches reports whether a posting satisfies every active dimension of the
// filter. The initiator lives on the owning entry, so callers pass it in.
func (f BalanceFilter) Matches(a *Amount, entryInitiator Reference) bool {
	if f.Context.Valid() && !f.Context.Equal(a.Context) {
		return false
	}

	if f.Subcontext.Valid() && !f.Subcontext.Equal(a.Subcontext) {
		return false
	}

	if f.Accountee.Valid() && !f.Accountee.Equal(a.Accountee) {
		return false
	}

	if f.Initiator.Valid() && !f.Initiator.Equal(entryInitiator) {
		return false
	}

	return true
}

// FilterAmounts returns the postings matching the filter. Entry initiators are
// looked up by entry ID; postings of unknown entries match only when the
// initiator dimension is inactive.
func FilterAmounts(amounts []*Amount, initiatorByEntry map[string]Reference, f BalanceFilter) []*Amount {
	var matched []*Amount
	for _, a := range amounts {
		if f.Matches(a, initiatorByEntry[a.EntryID]) {
			matched = append(matched, a)
		}
	}

	return matched
}

// SumAmounts returns the total of the given postings.
func SumAmounts(amounts []*Amount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Amount)
	}

	return total
}
