package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Paprikas/double-double/internal/domain"
	"github.com/Paprikas/double-double/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Kind   string `json:"kind"`
	Contra bool   `json:"contra"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:   r.Name,
		Number: r.Number,
		Kind:   domain.Kind(r.Kind),
		Contra: r.Contra,
	}
}

// RenameAccountRequest represents a request to rename an account.
type RenameAccountRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// ReferenceRequest identifies an external object by type and ID.
type ReferenceRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ToDomain converts to a domain reference. A nil request is the zero
// reference.
func (r *ReferenceRequest) ToDomain() domain.Reference {
	if r == nil {
		return domain.Reference{}
	}

	return domain.Reference{Type: r.Type, ID: r.ID}
}

// AmountRequest represents one posting of an entry. Account references an
// existing account by name or number.
type AmountRequest struct {
	Account    string            `json:"account"`
	Amount     decimal.Decimal   `json:"amount"`
	Accountee  *ReferenceRequest `json:"accountee,omitempty"`
	Context    *ReferenceRequest `json:"context,omitempty"`
	Subcontext *ReferenceRequest `json:"subcontext,omitempty"`
}

// ToSpec converts to a use case amount spec.
func (r *AmountRequest) ToSpec() usecase.AmountSpec {
	return usecase.AmountSpec{
		Account:    r.Account,
		Amount:     r.Amount,
		Accountee:  r.Accountee.ToDomain(),
		Context:    r.Context.ToDomain(),
		Subcontext: r.Subcontext.ToDomain(),
	}
}

// CreateEntryRequest represents a request to record an entry.
type CreateEntryRequest struct {
	Description string            `json:"description"`
	EntryType   string            `json:"entry_type,omitempty"`
	Initiator   *ReferenceRequest `json:"initiator,omitempty"`
	Reversed    bool              `json:"reversed,omitempty"`
	Debits      []AmountRequest   `json:"debits"`
	Credits     []AmountRequest   `json:"credits"`
}

// ToSpec converts to a use case entry spec.
func (r *CreateEntryRequest) ToSpec() usecase.EntrySpec {
	spec := usecase.EntrySpec{
		Description: r.Description,
		EntryType:   r.EntryType,
		Initiator:   r.Initiator.ToDomain(),
		Reversed:    r.Reversed,
		Debits:      make([]usecase.AmountSpec, len(r.Debits)),
		Credits:     make([]usecase.AmountSpec, len(r.Credits)),
	}

	for i := range r.Debits {
		spec.Debits[i] = r.Debits[i].ToSpec()
	}

	for i := range r.Credits {
		spec.Credits[i] = r.Credits[i].ToSpec()
	}

	return spec
}
