package usecase_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/metrics"
	"github.com/Paprikas/double-double/internal/usecase"
)

// newTestMetrics registers a fresh metric set on an isolated registry.
func newTestMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()

	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	return metrics.New()
}

func TestEntryUseCase_RecordsMetrics(t *testing.T) {
	f := newLedgerFixture(t)
	m := newTestMetrics(t)
	f.entries.WithMetrics(m)

	f.mustCreateAccount(t, "Cash", "1000", domain.Asset, false)
	f.mustCreateAccount(t, "Sales", "4000", domain.Revenue, false)

	f.debitCredit(t, "sale", "Cash", "Sales", 100)

	if got := testutil.ToFloat64(m.EntriesCreated); got != 1 {
		t.Errorf("expected 1 entry created, got %v", got)
	}
	if got := testutil.ToFloat64(m.EntryAmountsPosted); got != 2 {
		t.Errorf("expected 2 amounts posted, got %v", got)
	}

	_, err := f.entries.CreateEntry(context.Background(), usecase.EntrySpec{
		Description: "does not balance",
		Debits: []usecase.AmountSpec{
			{Account: "Cash", Amount: decimal.NewFromInt(100)},
		},
		Credits: []usecase.AmountSpec{
			{Account: "Sales", Amount: decimal.NewFromInt(90)},
		},
	})
	if err == nil {
		t.Fatal("expected unbalanced entry to fail")
	}

	rejected := testutil.ToFloat64(m.EntriesRejected.WithLabelValues("unbalanced"))
	if rejected != 1 {
		t.Errorf("expected 1 unbalanced rejection, got %v", rejected)
	}

	_, err = f.entries.CreateEntry(context.Background(), usecase.EntrySpec{
		Description: "unknown account",
		Debits: []usecase.AmountSpec{
			{Account: "Nonsense", Amount: decimal.NewFromInt(10)},
		},
		Credits: []usecase.AmountSpec{
			{Account: "Sales", Amount: decimal.NewFromInt(10)},
		},
	})
	if err == nil {
		t.Fatal("expected unresolved entry to fail")
	}

	unresolved := testutil.ToFloat64(m.EntriesRejected.WithLabelValues("unresolved_account"))
	if unresolved != 1 {
		t.Errorf("expected 1 unresolved rejection, got %v", unresolved)
	}

	if got := testutil.ToFloat64(m.EntriesCreated); got != 1 {
		t.Errorf("rejections must not count as created, got %v", got)
	}
}

func TestAccountUseCase_RecordsMetrics(t *testing.T) {
	f := newLedgerFixture(t)
	m := newTestMetrics(t)
	f.accounts.WithMetrics(m)

	f.mustCreateAccount(t, "Cash", "1000", domain.Asset, false)
	f.mustCreateAccount(t, "Loan", "2000", domain.Liability, false)
	f.mustCreateAccount(t, "Petty Cash", "1010", domain.Asset, false)

	if got := testutil.ToFloat64(m.AccountsCreated.WithLabelValues("asset")); got != 2 {
		t.Errorf("expected 2 asset accounts counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.AccountsCreated.WithLabelValues("liability")); got != 1 {
		t.Errorf("expected 1 liability account counted, got %v", got)
	}

	if _, err := f.accounts.ResolveAccount(context.Background(), "Cash"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if got := testutil.ToFloat64(m.AccountOperations.WithLabelValues("resolve")); got != 1 {
		t.Errorf("expected 1 resolve operation counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.AccountOperations.WithLabelValues("create")); got != 3 {
		t.Errorf("expected 3 create operations counted, got %v", got)
	}
}

func TestBalanceUseCase_RecordsMetrics(t *testing.T) {
	f := newLedgerFixture(t)
	m := newTestMetrics(t)
	f.balances.WithMetrics(m)

	cash := f.mustCreateAccount(t, "Cash", "1000", domain.Asset, false)
	f.mustCreateAccount(t, "Loan", "2000", domain.Liability, false)
	f.debitCredit(t, "borrow", "Cash", "Loan", 500)

	if _, err := f.balances.AccountBalance(context.Background(), cash.ID, domain.BalanceFilter{}); err != nil {
		t.Fatalf("account balance failed: %v", err)
	}

	trial, err := f.balances.TrialBalance(context.Background())
	if err != nil {
		t.Fatalf("trial balance failed: %v", err)
	}
	if !trial.IsZero() {
		t.Fatalf("expected zero trial balance, got %s", trial)
	}

	if got := testutil.ToFloat64(m.BalanceQueries.WithLabelValues("account")); got != 1 {
		t.Errorf("expected 1 account balance query counted, got %v", got)
	}
	// The trial balance walks all five kinds.
	if got := testutil.ToFloat64(m.BalanceQueries.WithLabelValues("kind")); got != 5 {
		t.Errorf("expected 5 kind queries counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.BalanceQueries.WithLabelValues("trial")); got != 1 {
		t.Errorf("expected 1 trial balance query counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.TrialBalance); got != 0 {
		t.Errorf("expected trial balance gauge 0, got %v", got)
	}
}
