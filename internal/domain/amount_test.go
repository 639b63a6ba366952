package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		amount  Amount
		wantErr error
	}{
		{
			name:    "valid",
			amount:  Amount{Side: Debit, EntryID: "e1", AccountID: "a1", Amount: decimal.NewFromInt(10)},
			wantErr: nil,
		},
		{
			name:    "zero amount",
			amount:  Amount{Side: Debit, EntryID: "e1", AccountID: "a1", Amount: decimal.Zero},
			wantErr: ErrZeroAmount,
		},
		{
			name:    "negative amount",
			amount:  Amount{Side: Credit, EntryID: "e1", AccountID: "a1", Amount: decimal.NewFromInt(-5)},
			wantErr: ErrZeroAmount,
		},
		{
			name:    "missing account",
			amount:  Amount{Side: Debit, EntryID: "e1", Amount: decimal.NewFromInt(10)},
			wantErr: ErrMissingAccount,
		},
		{
			name:    "missing entry",
			amount:  Amount{Side: Debit, AccountID: "a1", Amount: decimal.NewFromInt(10)},
			wantErr: ErrMissingEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.amount.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBalanceFilter_Matches(t *testing.T) {
	jobA := Reference{Type: "Job", ID: "a"}
	jobB := Reference{Type: "Job", ID: "b"}
	item := Reference{Type: "LineItem", ID: "7"}
	clerk := Reference{Type: "User", ID: "42"}

	posting := &Amount{
		Side:       Credit,
		Amount:     decimal.NewFromInt(10),
		Context:    jobA,
		Subcontext: item,
		Accountee:  Reference{Type: "Customer", ID: "c1"},
	}

	tests := []struct {
		name      string
		filter    BalanceFilter
		initiator Reference
		want      bool
	}{
		{"zero filter matches everything", BalanceFilter{}, Reference{}, true},
		{"matching context", BalanceFilter{Context: jobA}, Reference{}, true},
		{"non-matching context", BalanceFilter{Context: jobB}, Reference{}, false},
		{"context and subcontext compose", BalanceFilter{Context: jobA, Subcontext: item}, Reference{}, true},
		{"subcontext mismatch", BalanceFilter{Context: jobA, Subcontext: Reference{Type: "LineItem", ID: "8"}}, Reference{}, false},
		{"partial reference is ignored", BalanceFilter{Context: Reference{ID: "b"}}, Reference{}, true},
		{"type without id is ignored", BalanceFilter{Context: Reference{Type: "Job"}}, Reference{}, true},
		{"matching initiator", BalanceFilter{Initiator: clerk}, clerk, true},
		{"non-matching initiator", BalanceFilter{Initiator: clerk}, Reference{Type: "User", ID: "43"}, false},
		{"matching accountee", BalanceFilter{Accountee: Reference{Type: "Customer", ID: "c1"}}, Reference{}, true},
		{"non-matching accountee", BalanceFilter{Accountee: Reference{Type: "Customer", ID: "c2"}}, Reference{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(posting, tt.initiator); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterAmounts(t *testing.T) {
	jobA := Reference{Type: "Job", ID: "a"}
	jobB := Reference{Type: "Job", ID: "b"}

	amounts := []*Amount{
		{EntryID: "e1", Amount: decimal.NewFromInt(10), Context: jobA},
		{EntryID: "e2", Amount: decimal.NewFromInt(20), Context: jobA},
		{EntryID: "e3", Amount: decimal.NewFromInt(40), Context: jobB},
	}

	matched := FilterAmounts(amounts, nil, BalanceFilter{Context: jobA})

	if got := SumAmounts(matched); !got.Equal(decimal.NewFromInt(30)) {
		t.Errorf("filtered sum = %s, want 30", got)
	}

	all := FilterAmounts(amounts, nil, BalanceFilter{})

	if got := SumAmounts(all); !got.Equal(decimal.NewFromInt(70)) {
		t.Errorf("unfiltered sum = %s, want 70", got)
	}
}
