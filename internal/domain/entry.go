package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// EntryTypeUnassigned is the classification given to entries created without
// an explicit entry type.
const EntryTypeUnassigned = "unassigned"

// Entry is one atomic journal entry: a set of debit postings and a set of
// credit postings with equal totals. Entries are immutable once committed;
// corrections are made with new offsetting entries.
type Entry struct {
	ID          string
	Description string
	EntryType   string
	Initiator   Reference
	Debits      []Amount
	Credits     []Amount
	CreatedAt   time.Time
}

// DebitTotal returns the sum of all debit postings.
func (e *Entry) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range e.Debits {
		total = total.Add(e.Debits[i].Amount)
	}

	return total
}

// CreditTotal returns the sum of all credit postings.
func (e *Entry) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range e.Credits {
		total = total.Add(e.Credits[i].Amount)
	}

	return total
}

// Balanced reports whether debit and credit totals are exactly equal.
func (e *Entry) Balanced() bool {
	return e.DebitTotal().Equal(e.CreditTotal())
}

// Validate checks every entry invariant and reports all violations together,
// not just the first one found.
func (e *Entry) Validate() error {
	var err error

	if strings.TrimSpace(e.Description) == "" {
		err = multierr.Append(err, ErrMissingDescription)
	}

	if len(e.Debits) == 0 {
		err = multierr.Append(err, ErrNoDebitAmounts)
	}

	if len(e.Credits) == 0 {
		err = multierr.Append(err, ErrNoCreditAmounts)
	}

	for i := range e.Debits {
		if e.Debits[i].Amount.LessThanOrEqual(decimal.Zero) {
			err = multierr.Append(err, fmt.Errorf("debit %d: %w", i, ErrZeroAmount))
		}
	}

	for i := range e.Credits {
		if e.Credits[i].Amount.LessThanOrEqual(decimal.Zero) {
			err = multierr.Append(err, fmt.Errorf("credit %d: %w", i, ErrZeroAmount))
		}
	}

	if len(e.Debits) > 0 && len(e.Credits) > 0 && !e.Balanced() {
		err = multierr.Append(err, fmt.Errorf("%w: debits %s, credits %s",
			ErrUnbalanced, e.DebitTotal(), e.CreditTotal()))
	}

	return err
}
