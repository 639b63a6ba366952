package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/metrics"
)

const trialBalanceCacheKey = "balance:trial"

func accountBalanceCacheKey(accountID string) string {
	return "balance:account:" + accountID
}

// BalanceUseCase computes account, kind and trial balances over the
// append-only ledger. All operations are pure reads.
type BalanceUseCase struct {
	accountRepo AccountRepository
	balanceRepo BalanceRepository
	cache       Cache
	cacheTTL    time.Duration
	metrics     *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase. Cache may be nil to disable
// read caching.
func NewBalanceUseCase(accountRepo AccountRepository, balanceRepo BalanceRepository, cache Cache) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		cache:       cache,
		cacheTTL:    DefaultBalanceCacheTTL,
	}
}

// WithCacheTTL overrides how long computed balances stay cached.
func (uc *BalanceUseCase) WithCacheTTL(ttl time.Duration) *BalanceUseCase {
	if ttl > 0 {
		uc.cacheTTL = ttl
	}

	return uc
}

// WithMetrics enables metric recording on balance queries.
func (uc *BalanceUseCase) WithMetrics(m *metrics.Metrics) *BalanceUseCase {
	uc.metrics = m
	return uc
}

// observe records one balance query against the metric vecs.
func (uc *BalanceUseCase) observe(scope string, start time.Time) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.BalanceQueries.WithLabelValues(scope).Inc()
	uc.metrics.BalanceDuration.WithLabelValues(scope).Observe(time.Since(start).Seconds())
}

func (uc *BalanceUseCase) recordCache(hit bool) {
	if uc.metrics == nil {
		return
	}

	if hit {
		uc.metrics.CacheHits.Inc()
	} else {
		uc.metrics.CacheMisses.Inc()
	}
}

// DebitsBalance returns the sum of debit postings to the account matching the
// filter.
func (uc *BalanceUseCase) DebitsBalance(ctx context.Context, accountID string, filter domain.BalanceFilter) (decimal.Decimal, error) {
	defer uc.observe("debits", time.Now())

	return uc.balanceRepo.SumAmounts(ctx, accountID, domain.Debit, filter)
}

// CreditsBalance returns the sum of credit postings to the account matching
// the filter.
func (uc *BalanceUseCase) CreditsBalance(ctx context.Context, accountID string, filter domain.BalanceFilter) (decimal.Decimal, error) {
	defer uc.observe("credits", time.Now())

	return uc.balanceRepo.SumAmounts(ctx, accountID, domain.Credit, filter)
}

// AccountBalance returns the signed balance of one account, respecting its
// effective side. Unfiltered balances are served from cache when available.
func (uc *BalanceUseCase) AccountBalance(ctx context.Context, accountID string, filter domain.BalanceFilter) (decimal.Decimal, error) {
	defer uc.observe("account", time.Now())

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	cacheable := filter.IsZero() && uc.cache != nil
	if cacheable {
		if cached, err := uc.cache.Get(ctx, accountBalanceCacheKey(accountID)); err == nil {
			if balance, err := decimal.NewFromString(string(cached)); err == nil {
				uc.recordCache(true)
				return balance, nil
			}
		}

		uc.recordCache(false)
	}

	debits, err := uc.balanceRepo.SumAmounts(ctx, accountID, domain.Debit, filter)
	if err != nil {
		return decimal.Zero, err
	}

	credits, err := uc.balanceRepo.SumAmounts(ctx, accountID, domain.Credit, filter)
	if err != nil {
		return decimal.Zero, err
	}

	balance := account.Balance(debits, credits)

	if cacheable {
		_ = uc.cache.Set(ctx, accountBalanceCacheKey(accountID), []byte(balance.String()), uc.cacheTTL)
	}

	return balance, nil
}

// KindBalance returns the aggregate balance of all accounts of one kind.
// Contra accounts subtract from the kind-level total.
func (uc *BalanceUseCase) KindBalance(ctx context.Context, kind domain.Kind) (decimal.Decimal, error) {
	defer uc.observe("kind", time.Now())

	if !kind.Valid() {
		return decimal.Zero, domain.ErrInvalidKind
	}

	sums, err := uc.balanceRepo.SumsByKind(ctx, kind)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, s := range sums {
		balance := s.Account.Balance(s.Debits, s.Credits)
		if s.Account.Contra {
			total = total.Sub(balance)
		} else {
			total = total.Add(balance)
		}
	}

	return total, nil
}

// TrialBalance returns Assets - (Liabilities + Equity + Revenue - Expenses).
// A consistent ledger always yields zero.
func (uc *BalanceUseCase) TrialBalance(ctx context.Context) (decimal.Decimal, error) {
	defer uc.observe("trial", time.Now())

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, trialBalanceCacheKey); err == nil {
			if balance, err := decimal.NewFromString(string(cached)); err == nil {
				uc.recordCache(true)
				uc.setTrialGauge(balance)
				return balance, nil
			}
		}

		uc.recordCache(false)
	}

	balances := make(map[domain.Kind]decimal.Decimal, len(domain.Kinds))
	for _, kind := range domain.Kinds {
		balance, err := uc.KindBalance(ctx, kind)
		if err != nil {
			return decimal.Zero, err
		}

		balances[kind] = balance
	}

	trial := balances[domain.Asset].Sub(
		balances[domain.Liability].
			Add(balances[domain.Equity]).
			Add(balances[domain.Revenue]).
			Sub(balances[domain.Expense]))

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, trialBalanceCacheKey, []byte(trial.String()), uc.cacheTTL)
	}

	uc.setTrialGauge(trial)

	return trial, nil
}

func (uc *BalanceUseCase) setTrialGauge(trial decimal.Decimal) {
	if uc.metrics == nil {
		return
	}

	f, _ := trial.Float64()
	uc.metrics.TrialBalance.Set(f)
}
