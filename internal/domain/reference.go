package domain

// Reference is an opaque pointer to a record owned by the host application,
// discriminated by a type tag. The ledger never dereferences a Reference; it
// only stores it and compares it for equality when filtering balances.
type Reference struct {
	Type string
	ID   string
}

// Valid reports whether both components of the reference are set. A partially
// specified reference is treated as absent, not as an error.
func (r Reference) Valid() bool {
	return r.Type != "" && r.ID != ""
}

// IsZero reports whether the reference is completely unset.
func (r Reference) IsZero() bool {
	return r.Type == "" && r.ID == ""
}

// Equal reports whether two references point at the same record.
func (r Reference) Equal(other Reference) bool {
	return r.Type == other.Type && r.ID == other.ID
}
