package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizationResult is the gateway's decision for a single transfer amount.
// Produced fresh per request, never cached.
type AuthorizationResult struct {
	IsAuthorized bool
	Reason       string
}

// Ledger holds the payer's balance and the beneficiary directory
type Ledger interface {
	// GetBalance returns the payer's current balance
	GetBalance(ctx context.Context) (decimal.Decimal, error)

	// GetBeneficiaries returns the directory of transfer beneficiaries
	GetBeneficiaries(ctx context.Context) ([]Beneficiary, error)

	// Transfer debits the balance by amount in favor of the given
	// beneficiary. Returns ErrInsufficientBalance when the debit would
	// drive the balance negative. The debit either fully applies or
	// leaves no partial effect.
	Transfer(ctx context.Context, beneficiaryID uuid.UUID, amount decimal.Decimal) error
}

// AuthorizationGateway approves or denies a transfer amount.
// The decision is a black box to the caller; no business rule about
// which amounts are denied may be assumed.
type AuthorizationGateway interface {
	Authorize(ctx context.Context, amount decimal.Decimal) (AuthorizationResult, error)
}

// NotificationSink receives fire-and-forget outcome signals.
// Implementations must never fail the caller; delivery errors are
// logged and swallowed.
type NotificationSink interface {
	NotifySuccess(amount decimal.Decimal)
	NotifyDenied(reason string)
}

// AuthRepository authenticates a user by credentials
type AuthRepository interface {
	// Login returns the authenticated user, or ErrInvalidCredentials
	// when the credentials do not match
	Login(ctx context.Context, email, password string) (User, error)
}
