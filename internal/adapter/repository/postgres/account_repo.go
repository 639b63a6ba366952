package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/postgres/generated"
)

const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new account. Name or number collisions surface as
// domain.ErrAccountExists.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		ID:        account.ID,
		Kind:      string(account.Kind),
		Name:      account.Name,
		Number:    account.Number,
		Contra:    account.Contra,
		CreatedAt: timeToPgTimestamptz(account.CreatedAt),
	})

	return mapUniqueViolation(err)
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// GetByName retrieves an account by its unique name.
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// GetByNumber retrieves an account by its unique number.
func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// Update renames or renumbers an account. Kind and contra are immutable.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	err := r.queries.UpdateAccount(ctx, generated.UpdateAccountParams{
		ID:     account.ID,
		Name:   account.Name,
		Number: account.Number,
	})

	return mapUniqueViolation(err)
}

// List lists accounts ordered by number.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

// ListByKind lists all accounts of one kind.
func (r *AccountRepository) ListByKind(ctx context.Context, kind domain.Kind) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccountsByKind(ctx, string(kind))
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToAccount(row))
	}

	return accounts, nil
}

func rowToAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:        row.ID,
		Kind:      domain.Kind(row.Kind),
		Name:      row.Name,
		Number:    row.Number,
		Contra:    row.Contra,
		CreatedAt: row.CreatedAt.Time,
	}
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrAccountExists
	}

	return err
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// refToText splits a domain.Reference into nullable columns. Partial
// references are stored as NULLs.
func refToText(ref domain.Reference) (refType, refID pgtype.Text) {
	if !ref.Valid() {
		return pgtype.Text{}, pgtype.Text{}
	}

	return pgtype.Text{String: ref.Type, Valid: true}, pgtype.Text{String: ref.ID, Valid: true}
}

func textToRef(refType, refID pgtype.Text) domain.Reference {
	if !refType.Valid || !refID.Valid {
		return domain.Reference{}
	}

	return domain.Reference{Type: refType.String, ID: refID.String}
}
