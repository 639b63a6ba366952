package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByName(ctx context.Context, name string) (*domain.Account, error)
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByKind(ctx context.Context, kind domain.Kind) ([]*domain.Account, error)
}

// EntryRepository defines data access for entries and their amounts.
type EntryRepository interface {
	// Create persists the entry and all of its amounts inside tx.
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
}

// AccountSums carries raw per-account posting totals. Sign conventions are
// applied by the caller, not by storage.
type AccountSums struct {
	Account *domain.Account
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// BalanceRepository defines aggregate queries over amounts.
type BalanceRepository interface {
	SumAmounts(ctx context.Context, accountID string, side domain.Side, filter domain.BalanceFilter) (decimal.Decimal, error)
	SumsByKind(ctx context.Context, kind domain.Kind) ([]AccountSums, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
