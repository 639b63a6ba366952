package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Kind      string    `json:"kind"`
	Contra    bool      `json:"contra"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Number:    a.Number,
		Kind:      string(a.Kind),
		Contra:    a.Contra,
		CreatedAt: a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// ReferenceResponse identifies an external object in API responses.
type ReferenceResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ReferenceFromDomain converts a domain reference. The zero reference is
// omitted from responses.
func ReferenceFromDomain(ref domain.Reference) *ReferenceResponse {
	if ref.IsZero() {
		return nil
	}

	return &ReferenceResponse{Type: ref.Type, ID: ref.ID}
}

// AmountResponse represents one posting in API responses.
type AmountResponse struct {
	ID         string             `json:"id"`
	AccountID  string             `json:"account_id"`
	Amount     decimal.Decimal    `json:"amount"`
	Accountee  *ReferenceResponse `json:"accountee,omitempty"`
	Context    *ReferenceResponse `json:"context,omitempty"`
	Subcontext *ReferenceResponse `json:"subcontext,omitempty"`
}

// AmountsFromDomain converts domain amounts to responses.
func AmountsFromDomain(amounts []domain.Amount) []*AmountResponse {
	result := make([]*AmountResponse, len(amounts))
	for i := range amounts {
		a := &amounts[i]
		result[i] = &AmountResponse{
			ID:         a.ID,
			AccountID:  a.AccountID,
			Amount:     a.Amount,
			Accountee:  ReferenceFromDomain(a.Accountee),
			Context:    ReferenceFromDomain(a.Context),
			Subcontext: ReferenceFromDomain(a.Subcontext),
		}
	}
	return result
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	EntryType   string             `json:"entry_type"`
	Initiator   *ReferenceResponse `json:"initiator,omitempty"`
	Debits      []*AmountResponse  `json:"debits"`
	Credits     []*AmountResponse  `json:"credits"`
	CreatedAt   time.Time          `json:"created_at"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Description: e.Description,
		EntryType:   e.EntryType,
		Initiator:   ReferenceFromDomain(e.Initiator),
		Debits:      AmountsFromDomain(e.Debits),
		Credits:     AmountsFromDomain(e.Credits),
		CreatedAt:   e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// BalanceResponse represents a single account balance.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// KindBalanceResponse represents the aggregate balance of an account kind.
type KindBalanceResponse struct {
	Kind    string          `json:"kind"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the ledger-wide trial balance.
type TrialBalanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Balanced bool            `json:"balanced"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
