package domain

import "github.com/google/uuid"

// User represents the authenticated payer initiating transfers.
// The email is the stable identity key used by the transfer rules.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}
