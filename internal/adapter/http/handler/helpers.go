package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Paprikas/double-double/internal/adapter/http/dto"
	"github.com/Paprikas/double-double/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrMissingAccountName),
		errors.Is(err, domain.ErrMissingAccountNumber),
		errors.Is(err, domain.ErrMissingDescription),
		errors.Is(err, domain.ErrNoDebitAmounts),
		errors.Is(err, domain.ErrNoCreditAmounts),
		errors.Is(err, domain.ErrUnbalanced),
		errors.Is(err, domain.ErrZeroAmount),
		errors.Is(err, domain.ErrMissingAccount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// referenceFromQuery reads a reference dimension from paired query
// parameters, e.g. context_type and context_id.
func referenceFromQuery(r *http.Request, dim string) domain.Reference {
	q := r.URL.Query()
	return domain.Reference{
		Type: q.Get(dim + "_type"),
		ID:   q.Get(dim + "_id"),
	}
}

// balanceFilterFromQuery assembles a balance filter from query parameters.
// Partially specified dimensions are carried through and ignored by the
// filter itself.
func balanceFilterFromQuery(r *http.Request) domain.BalanceFilter {
	return domain.BalanceFilter{
		Context:    referenceFromQuery(r, "context"),
		Subcontext: referenceFromQuery(r, "subcontext"),
		Accountee:  referenceFromQuery(r, "accountee"),
		Initiator:  referenceFromQuery(r, "initiator"),
	}
}
