package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// WithMetrics enables metric recording on account operations.
func (uc *AccountUseCase) WithMetrics(m *metrics.Metrics) *AccountUseCase {
	uc.metrics = m
	return uc
}

func (uc *AccountUseCase) recordOperation(operation string) {
	if uc.metrics != nil {
		uc.metrics.AccountOperations.WithLabelValues(operation).Inc()
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name   string
	Number string
	Kind   domain.Kind
	Contra bool
}

// CreateAccount creates a new ledger account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Number:    input.Number,
		Kind:      input.Kind,
		Contra:    input.Contra,
		CreatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.WithLabelValues(string(account.Kind)).Inc()
	}
	uc.recordOperation("create")

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ResolveAccount resolves a name-or-number reference to an account. An exact
// name match wins over an exact number match.
func (uc *AccountUseCase) ResolveAccount(ctx context.Context, nameOrNumber string) (*domain.Account, error) {
	uc.recordOperation("resolve")

	return resolveAccount(ctx, uc.accountRepo, nameOrNumber)
}

// RenameAccount updates an account's name and number. Uniqueness is enforced
// by storage; postings keep referencing the account by ID.
func (uc *AccountUseCase) RenameAccount(ctx context.Context, id, name, number string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *account
	updated.Name = name
	updated.Number = number

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	uc.recordOperation("rename")

	return &updated, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Kind   domain.Kind
	Limit  int
	Offset int
}

// ListAccounts lists accounts, optionally restricted to one kind.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Kind != "" {
		if !input.Kind.Valid() {
			return nil, domain.ErrInvalidKind
		}

		return uc.accountRepo.ListByKind(ctx, input.Kind)
	}

	return uc.accountRepo.List(ctx, clampLimit(input.Limit), max(input.Offset, 0))
}

// resolveAccount is shared by account and entry use cases.
func resolveAccount(ctx context.Context, repo AccountRepository, nameOrNumber string) (*domain.Account, error) {
	account, err := repo.GetByName(ctx, nameOrNumber)
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	account, err = repo.GetByNumber(ctx, nameOrNumber)
	if err == nil {
		return account, nil
	}

	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("%w: %q", domain.ErrAccountNotFound, nameOrNumber)
	}

	return nil, err
}
