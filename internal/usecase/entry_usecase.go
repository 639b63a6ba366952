package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/metrics"
)

// EntryUseCase handles journal entry business logic.
type EntryUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
	metrics     *metrics.Metrics
}

// NewEntryUseCase creates a new EntryUseCase. Cache may be nil when balance
// caching is disabled.
func NewEntryUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
) *EntryUseCase {
	return &EntryUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		retrier:     retrier,
		cache:       cache,
	}
}

// WithMetrics enables metric recording on entry operations.
func (uc *EntryUseCase) WithMetrics(m *metrics.Metrics) *EntryUseCase {
	uc.metrics = m
	return uc
}

// AmountSpec describes one posting of an entry under construction. Account
// references an existing account by name or number.
type AmountSpec struct {
	Account    string
	Amount     decimal.Decimal
	Accountee  domain.Reference
	Context    domain.Reference
	Subcontext domain.Reference
}

// EntrySpec describes an entry to build. When Reversed is set the debit and
// credit lists are swapped before construction; contextual tags stay attached
// to their postings.
type EntrySpec struct {
	Description string
	EntryType   string
	Initiator   domain.Reference
	Reversed    bool
	Debits      []AmountSpec
	Credits     []AmountSpec
}

// BuildEntry resolves account references and materializes a validated entry.
// It performs no writes. All validation and resolution failures are collected
// and reported together.
func (uc *EntryUseCase) BuildEntry(ctx context.Context, spec EntrySpec) (*domain.Entry, error) {
	debits, credits := spec.Debits, spec.Credits
	if spec.Reversed {
		debits, credits = credits, debits
	}

	entryType := spec.EntryType
	if entryType == "" {
		entryType = domain.EntryTypeUnassigned
	}

	entry := &domain.Entry{
		ID:          uc.idGen.Generate(),
		Description: spec.Description,
		EntryType:   entryType,
		Initiator:   spec.Initiator,
		CreatedAt:   time.Now().UTC(),
	}

	var buildErr error

	for i, s := range debits {
		amount, err := uc.buildAmount(ctx, entry, domain.Debit, s)
		if err != nil {
			buildErr = multierr.Append(buildErr, fmt.Errorf("debit %d: %w", i, err))
		}

		entry.Debits = append(entry.Debits, amount)
	}

	for i, s := range credits {
		amount, err := uc.buildAmount(ctx, entry, domain.Credit, s)
		if err != nil {
			buildErr = multierr.Append(buildErr, fmt.Errorf("credit %d: %w", i, err))
		}

		entry.Credits = append(entry.Credits, amount)
	}

	buildErr = multierr.Append(buildErr, entry.Validate())
	if buildErr != nil {
		return nil, buildErr
	}

	return entry, nil
}

// buildAmount materializes one posting. Resolution failures leave the account
// unset so the caller can keep collecting violations.
func (uc *EntryUseCase) buildAmount(ctx context.Context, entry *domain.Entry, side domain.Side, spec AmountSpec) (domain.Amount, error) {
	amount := domain.Amount{
		ID:         uc.idGen.Generate(),
		Side:       side,
		EntryID:    entry.ID,
		Amount:     spec.Amount,
		Accountee:  spec.Accountee,
		Context:    spec.Context,
		Subcontext: spec.Subcontext,
		CreatedAt:  entry.CreatedAt,
	}

	account, err := resolveAccount(ctx, uc.accountRepo, spec.Account)
	if err != nil {
		return amount, err
	}

	amount.AccountID = account.ID

	return amount, nil
}

// CreateEntry builds and transactionally persists an entry with all of its
// amounts. Either the entry and every amount commit, or nothing does.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, spec EntrySpec) (*domain.Entry, error) {
	start := time.Now()

	entry, err := uc.BuildEntry(ctx, spec)
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.EntriesRejected.WithLabelValues(rejectionReason(err)).Inc()
		}

		return nil, err
	}

	commit := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, commit)
	} else {
		err = commit()
	}

	if err != nil {
		return nil, err
	}

	uc.invalidateBalances(ctx, entry)

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.Inc()
		uc.metrics.EntryAmountsPosted.Add(float64(len(entry.Debits) + len(entry.Credits)))
		uc.metrics.EntryDuration.Observe(time.Since(start).Seconds())
	}

	return entry, nil
}

// rejectionReason classifies a build failure for the rejection counter.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnbalanced):
		return "unbalanced"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "unresolved_account"
	default:
		return "invalid"
	}
}

// GetEntry retrieves an entry with its amounts.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntriesByAccountInput represents input for listing entries.
type ListEntriesByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListEntriesByAccount lists entries that post to an account.
func (uc *EntryUseCase) ListEntriesByAccount(ctx context.Context, input ListEntriesByAccountInput) ([]*domain.Entry, error) {
	return uc.entryRepo.ListByAccount(ctx, input.AccountID, clampLimit(input.Limit), max(input.Offset, 0))
}

// invalidateBalances drops cached balances touched by a committed entry.
// Cache invalidation is best-effort; readers fall back to storage.
func (uc *EntryUseCase) invalidateBalances(ctx context.Context, entry *domain.Entry) {
	if uc.cache == nil {
		return
	}

	keys := []string{trialBalanceCacheKey}

	seen := make(map[string]bool)
	for _, amounts := range [][]domain.Amount{entry.Debits, entry.Credits} {
		for i := range amounts {
			if id := amounts[i].AccountID; !seen[id] {
				seen[id] = true
				keys = append(keys, accountBalanceCacheKey(id))
			}
		}
	}

	_ = uc.cache.Delete(ctx, keys...)
}
