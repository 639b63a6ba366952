package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/infrastructure/postgres/generated"
	"github.com/Paprikas/double-double/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository. It returns raw
// debit/credit sums; sign conventions are applied by the caller.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// SumAmounts sums postings of one side to one account, restricted by the
// filter. Inactive filter dimensions become NULL parameters that the query
// ignores.
func (r *BalanceRepository) SumAmounts(ctx context.Context, accountID string, side domain.Side, filter domain.BalanceFilter) (decimal.Decimal, error) {
	contextType, contextID := refToText(filter.Context)
	subcontextType, subcontextID := refToText(filter.Subcontext)
	accounteeType, accounteeID := refToText(filter.Accountee)
	initiatorType, initiatorID := refToText(filter.Initiator)

	total, err := r.queries.SumAmounts(ctx, generated.SumAmountsParams{
		AccountID:      accountID,
		Side:           string(side),
		ContextType:    contextType,
		ContextID:      contextID,
		SubcontextType: subcontextType,
		SubcontextID:   subcontextID,
		AccounteeType:  accounteeType,
		AccounteeID:    accounteeID,
		InitiatorType:  initiatorType,
		InitiatorID:    initiatorID,
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// SumsByKind returns per-account debit and credit totals for every account
// of one kind, including accounts without postings.
func (r *BalanceRepository) SumsByKind(ctx context.Context, kind domain.Kind) ([]usecase.AccountSums, error) {
	rows, err := r.queries.SumAmountsByKind(ctx, string(kind))
	if err != nil {
		return nil, err
	}

	sums := make([]usecase.AccountSums, 0, len(rows))
	for _, row := range rows {
		sums = append(sums, usecase.AccountSums{
			Account: &domain.Account{
				ID:        row.ID,
				Kind:      domain.Kind(row.Kind),
				Name:      row.Name,
				Number:    row.Number,
				Contra:    row.Contra,
				CreatedAt: row.CreatedAt.Time,
			},
			Debits:  numericToDecimal(row.Debits),
			Credits: numericToDecimal(row.Credits),
		})
	}

	return sums, nil
}
