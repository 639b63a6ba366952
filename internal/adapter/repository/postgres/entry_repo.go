package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/postgres/generated"
	"github.com/Paprikas/double-double/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists the entry row and every amount row inside tx. The caller
// owns commit and rollback.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	initiatorType, initiatorID := refToText(entry.Initiator)

	_, err := queries.CreateEntry(ctx, generated.CreateEntryParams{
		ID:            entry.ID,
		Description:   entry.Description,
		EntryType:     entry.EntryType,
		InitiatorID:   initiatorID,
		InitiatorType: initiatorType,
		CreatedAt:     timeToPgTimestamptz(entry.CreatedAt),
	})
	if err != nil {
		return err
	}

	for i := range entry.Debits {
		if err := createAmount(ctx, queries, &entry.Debits[i]); err != nil {
			return err
		}
	}

	for i := range entry.Credits {
		if err := createAmount(ctx, queries, &entry.Credits[i]); err != nil {
			return err
		}
	}

	return nil
}

func createAmount(ctx context.Context, queries *generated.Queries, amount *domain.Amount) error {
	accounteeType, accounteeID := refToText(amount.Accountee)
	contextType, contextID := refToText(amount.Context)
	subcontextType, subcontextID := refToText(amount.Subcontext)

	_, err := queries.CreateAmount(ctx, generated.CreateAmountParams{
		ID:             amount.ID,
		Side:           string(amount.Side),
		EntryID:        amount.EntryID,
		AccountID:      amount.AccountID,
		Amount:         decimalToNumeric(amount.Amount),
		AccounteeID:    accounteeID,
		AccounteeType:  accounteeType,
		ContextID:      contextID,
		ContextType:    contextType,
		SubcontextID:   subcontextID,
		SubcontextType: subcontextType,
		CreatedAt:      timeToPgTimestamptz(amount.CreatedAt),
	})

	return err
}

// GetByID retrieves an entry with all of its amounts.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	row, err := r.queries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	entry := rowToEntry(row)
	if err := r.loadAmounts(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListByAccount retrieves entries posting to an account, oldest first.
func (r *EntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.ListEntriesByAccount(ctx, generated.ListEntriesByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entry := rowToEntry(row)
		if err := r.loadAmounts(ctx, entry); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *EntryRepository) loadAmounts(ctx context.Context, entry *domain.Entry) error {
	rows, err := r.queries.GetAmountsByEntry(ctx, entry.ID)
	if err != nil {
		return err
	}

	for _, row := range rows {
		amount := rowToAmount(row)
		if amount.Side == domain.Debit {
			entry.Debits = append(entry.Debits, amount)
		} else {
			entry.Credits = append(entry.Credits, amount)
		}
	}

	return nil
}

func rowToEntry(row generated.Entry) *domain.Entry {
	return &domain.Entry{
		ID:          row.ID,
		Description: row.Description,
		EntryType:   row.EntryType,
		Initiator:   textToRef(row.InitiatorType, row.InitiatorID),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func rowToAmount(row generated.Amount) domain.Amount {
	return domain.Amount{
		ID:         row.ID,
		Side:       domain.Side(row.Side),
		EntryID:    row.EntryID,
		AccountID:  row.AccountID,
		Amount:     numericToDecimal(row.Amount),
		Accountee:  textToRef(row.AccounteeType, row.AccounteeID),
		Context:    textToRef(row.ContextType, row.ContextID),
		Subcontext: textToRef(row.SubcontextType, row.SubcontextID),
		CreatedAt:  row.CreatedAt.Time,
	}
}
