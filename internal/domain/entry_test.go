package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

func debit(account string, amount int64) Amount {
	return Amount{Side: Debit, AccountID: account, Amount: decimal.NewFromInt(amount)}
}

func credit(account string, amount int64) Amount {
	return Amount{Side: Credit, AccountID: account, Amount: decimal.NewFromInt(amount)}
}

func TestEntry_Balanced(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{
			name: "equal totals",
			entry: Entry{
				Debits:  []Amount{debit("cash", 100)},
				Credits: []Amount{credit("loan", 100)},
			},
			want: true,
		},
		{
			name: "split debit still balanced",
			entry: Entry{
				Debits:  []Amount{debit("cash", 60), debit("inventory", 40)},
				Credits: []Amount{credit("loan", 100)},
			},
			want: true,
		},
		{
			name: "unequal totals",
			entry: Entry{
				Debits:  []Amount{debit("cash", 100)},
				Credits: []Amount{credit("loan", 90)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Balanced(); got != tt.want {
				t.Errorf("Balanced() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		wantErrs []error
	}{
		{
			name: "valid entry",
			entry: Entry{
				Description: "loan disbursement",
				Debits:      []Amount{debit("cash", 100)},
				Credits:     []Amount{credit("loan", 100)},
			},
		},
		{
			name: "missing description",
			entry: Entry{
				Description: "  ",
				Debits:      []Amount{debit("cash", 100)},
				Credits:     []Amount{credit("loan", 100)},
			},
			wantErrs: []error{ErrMissingDescription},
		},
		{
			name: "no debits",
			entry: Entry{
				Description: "oops",
				Credits:     []Amount{credit("loan", 100)},
			},
			wantErrs: []error{ErrNoDebitAmounts},
		},
		{
			name: "no credits",
			entry: Entry{
				Description: "oops",
				Debits:      []Amount{debit("cash", 100)},
			},
			wantErrs: []error{ErrNoCreditAmounts},
		},
		{
			name: "unbalanced",
			entry: Entry{
				Description: "oops",
				Debits:      []Amount{debit("cash", 100)},
				Credits:     []Amount{credit("loan", 90)},
			},
			wantErrs: []error{ErrUnbalanced},
		},
		{
			name: "zero amount posting",
			entry: Entry{
				Description: "oops",
				Debits:      []Amount{debit("cash", 100), debit("inventory", 0)},
				Credits:     []Amount{credit("loan", 100)},
			},
			wantErrs: []error{ErrZeroAmount},
		},
		{
			name:     "all violations collected",
			entry:    Entry{},
			wantErrs: []error{ErrMissingDescription, ErrNoDebitAmounts, ErrNoCreditAmounts},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()

			if len(tt.wantErrs) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}

				return
			}

			if err == nil {
				t.Fatalf("Validate() = nil, want %v", tt.wantErrs)
			}

			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Validate() missing %v in %v", want, err)
				}
			}

			if got := len(multierr.Errors(err)); got != len(tt.wantErrs) {
				t.Errorf("Validate() reported %d violations, want %d: %v", got, len(tt.wantErrs), err)
			}
		})
	}
}
