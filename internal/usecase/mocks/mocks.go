package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository backed
// by an in-memory map. Individual methods can be overridden via the Func
// fields.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc      func(ctx context.Context, account *domain.Account) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Account, error)
	GetByNameFunc   func(ctx context.Context, name string) (*domain.Account, error)
	GetByNumberFunc func(ctx context.Context, number string) (*domain.Account, error)
	UpdateFunc      func(ctx context.Context, account *domain.Account) error
	ListFunc        func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByKindFunc  func(ctx context.Context, kind domain.Kind) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.accounts {
		if existing.Name == account.Name || existing.Number == account.Number {
			return domain.ErrAccountExists
		}
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.Name == name {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.Number == number {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	for _, existing := range m.accounts {
		if existing.ID == account.ID {
			continue
		}
		if existing.Name == account.Name || existing.Number == account.Number {
			return domain.ErrAccountExists
		}
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListByKind(ctx context.Context, kind domain.Kind) ([]*domain.Account, error) {
	if m.ListByKindFunc != nil {
		return m.ListByKindFunc(ctx, kind)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.Kind == kind {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// MockEntryRepository is a mock implementation of EntryRepository that stores
// committed entries in insertion order.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.Entry
	order   []string

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Entry, error)
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.Entry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	m.order = append(m.order, entry.ID)
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if entry, ok := m.entries[id]; ok {
		return entry, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []*domain.Entry
	for _, id := range m.order {
		entry := m.entries[id]
		if entryTouchesAccount(entry, accountID) {
			matched = append(matched, entry)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// Count returns the number of committed entries.
func (m *MockEntryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// AmountCount returns the number of persisted amounts across all entries.
func (m *MockEntryRepository) AmountCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, entry := range m.entries {
		count += len(entry.Debits) + len(entry.Credits)
	}
	return count
}

func entryTouchesAccount(entry *domain.Entry, accountID string) bool {
	for i := range entry.Debits {
		if entry.Debits[i].AccountID == accountID {
			return true
		}
	}
	for i := range entry.Credits {
		if entry.Credits[i].AccountID == accountID {
			return true
		}
	}
	return false
}

// MockBalanceRepository is a mock implementation of BalanceRepository that
// aggregates over the entries held by a MockEntryRepository.
type MockBalanceRepository struct {
	Accounts *MockAccountRepository
	Entries  *MockEntryRepository

	SumAmountsFunc func(ctx context.Context, accountID string, side domain.Side, filter domain.BalanceFilter) (decimal.Decimal, error)
	SumsByKindFunc func(ctx context.Context, kind domain.Kind) ([]usecase.AccountSums, error)
}

func NewMockBalanceRepository(accounts *MockAccountRepository, entries *MockEntryRepository) *MockBalanceRepository {
	return &MockBalanceRepository{
		Accounts: accounts,
		Entries:  entries,
	}
}

func (m *MockBalanceRepository) SumAmounts(ctx context.Context, accountID string, side domain.Side, filter domain.BalanceFilter) (decimal.Decimal, error) {
	if m.SumAmountsFunc != nil {
		return m.SumAmountsFunc(ctx, accountID, side, filter)
	}
	m.Entries.mu.RLock()
	defer m.Entries.mu.RUnlock()

	initiators := make(map[string]domain.Reference)
	var postings []*domain.Amount
	for _, entry := range m.Entries.entries {
		initiators[entry.ID] = entry.Initiator
		amounts := entry.Debits
		if side == domain.Credit {
			amounts = entry.Credits
		}
		for i := range amounts {
			if amounts[i].AccountID == accountID {
				postings = append(postings, &amounts[i])
			}
		}
	}

	return domain.SumAmounts(domain.FilterAmounts(postings, initiators, filter)), nil
}

func (m *MockBalanceRepository) SumsByKind(ctx context.Context, kind domain.Kind) ([]usecase.AccountSums, error) {
	if m.SumsByKindFunc != nil {
		return m.SumsByKindFunc(ctx, kind)
	}
	accounts, err := m.Accounts.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	sums := make([]usecase.AccountSums, 0, len(accounts))
	for _, acc := range accounts {
		debits, err := m.SumAmounts(ctx, acc.ID, domain.Debit, domain.BalanceFilter{})
		if err != nil {
			return nil, err
		}
		credits, err := m.SumAmounts(ctx, acc.ID, domain.Credit, domain.BalanceFilter{})
		if err != nil {
			return nil, err
		}
		sums = append(sums, usecase.AccountSums{Account: acc, Debits: debits, Credits: credits})
	}
	return sums, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockRetrier is a mock implementation of Retrier that runs the operation
// exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockCache is a mock implementation of Cache that ignores TTLs.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, keys ...string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

var errCacheMiss = fmt.Errorf("cache miss")

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, errCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, keys...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}
