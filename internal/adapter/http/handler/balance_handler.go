package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/adapter/http/dto"
	"github.com/Paprikas/double-double/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	AccountBalance(ctx context.Context, accountID string, filter domain.BalanceFilter) (decimal.Decimal, error)
	DebitsBalance(ctx context.Context, accountID string, filter domain.BalanceFilter) (decimal.Decimal, error)
	CreditsBalance(ctx context.Context, accountID string, filter domain.BalanceFilter) (decimal.Decimal, error)
	KindBalance(ctx context.Context, kind domain.Kind) (decimal.Decimal, error)
	TrialBalance(ctx context.Context) (decimal.Decimal, error)
}

// BalanceHandler handles balance-related HTTP requests.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// AccountBalance returns the balance of one account. The side query parameter
// switches to the raw debit or credit sum.
func (h *BalanceHandler) AccountBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	filter := balanceFilterFromQuery(r)

	var (
		balance decimal.Decimal
		err     error
	)

	switch r.URL.Query().Get("side") {
	case "":
		balance, err = h.balanceUC.AccountBalance(r.Context(), accountID, filter)
	case "debits":
		balance, err = h.balanceUC.DebitsBalance(r.Context(), accountID, filter)
	case "credits":
		balance, err = h.balanceUC.CreditsBalance(r.Context(), accountID, filter)
	default:
		writeError(w, http.StatusBadRequest, "invalid 'side' parameter", "use debits or credits")
		return
	}

	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		Balance:   balance,
	})
}

// KindBalance returns the aggregate balance of one account kind.
func (h *BalanceHandler) KindBalance(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(chi.URLParam(r, "kind"))

	balance, err := h.balanceUC.KindBalance(r.Context(), kind)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute kind balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.KindBalanceResponse{
		Kind:    string(kind),
		Balance: balance,
	})
}

// TrialBalance returns the ledger-wide trial balance.
func (h *BalanceHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.balanceUC.TrialBalance(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute trial balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceResponse{
		Balance:  balance,
		Balanced: balance.IsZero(),
	})
}
