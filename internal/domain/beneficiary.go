package domain

import "github.com/google/uuid"

// Beneficiary represents a transfer recipient from the payer's directory.
// Immutable once constructed; referenced by ID from the transfer flow.
type Beneficiary struct {
	ID           uuid.UUID
	Name         string
	Email        string
	AccountLabel string
}
