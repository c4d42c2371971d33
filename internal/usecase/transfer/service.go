package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
)

// Input represents one transfer submission from the presentation layer
type Input struct {
	Payer         domain.User
	BeneficiaryID *uuid.UUID // nil when the caller selected no beneficiary
	AmountText    string     // raw amount text as typed, e.g. "1.234,56"
}

// Service orchestrates the transfer authorization and execution workflow
type Service struct {
	Ledger     domain.Ledger
	Authorizer domain.AuthorizationGateway
	Notifier   domain.NotificationSink
}

// NewService creates a new transfer Service instance
func NewService(ledger domain.Ledger, authorizer domain.AuthorizationGateway, notifier domain.NotificationSink) *Service {
	return &Service{
		Ledger:     ledger,
		Authorizer: authorizer,
		Notifier:   notifier,
	}
}

// Execute runs one transfer attempt end to end:
//  1. Resolve the beneficiary against the ledger directory
//  2. Parse the raw amount text
//  3. Validate business rules against a freshly fetched balance
//  4. Consult the authorization gateway
//  5. Debit the ledger
//  6. Signal the outcome (fire-and-forget)
//
// Each step short-circuits on the first failure. Every invocation is a
// fresh, independent run; no state is retained across calls beyond what
// the ledger holds. All failure paths are returned as a tagged outcome.
func (s *Service) Execute(ctx context.Context, input Input) domain.TransferOutcome {
	// 1. Resolve beneficiary
	if input.BeneficiaryID == nil {
		return domain.ValidationFailedOutcome(domain.ValidationNoBeneficiarySelected)
	}

	beneficiaries, err := s.Ledger.GetBeneficiaries(ctx)
	if err != nil {
		return domain.ExecutionFailedOutcome(domain.ExecutionUnknown)
	}

	var beneficiary *domain.Beneficiary
	for i := range beneficiaries {
		if beneficiaries[i].ID == *input.BeneficiaryID {
			beneficiary = &beneficiaries[i]
			break
		}
	}
	if beneficiary == nil {
		return domain.ValidationFailedOutcome(domain.ValidationInvalidBeneficiary)
	}

	// 2. Parse amount
	amount, err := domain.ParseAmount(input.AmountText)
	if err != nil {
		return domain.ValidationFailedOutcome(domain.ValidationInvalidAmount)
	}

	// 3. Validate against a fresh balance, never a cached one
	balance, err := s.Ledger.GetBalance(ctx)
	if err != nil {
		return domain.ExecutionFailedOutcome(domain.ExecutionUnknown)
	}

	if err := domain.ValidateTransfer(input.Payer, *beneficiary, amount, balance); err != nil {
		return domain.ValidationFailedOutcome(validationKind(err))
	}

	// 4. Authorize. A denial must not reach the ledger.
	result, err := s.Authorizer.Authorize(ctx, amount)
	if err != nil {
		return domain.ExecutionFailedOutcome(domain.ExecutionUnknown)
	}

	if !result.IsAuthorized {
		s.Notifier.NotifyDenied(result.Reason)
		return domain.AuthorizationDeniedOutcome(result.Reason)
	}

	// 5. Debit the ledger; the only mutating step
	if err := s.Ledger.Transfer(ctx, beneficiary.ID, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return domain.ExecutionFailedOutcome(domain.ExecutionInsufficientBalance)
		}
		return domain.ExecutionFailedOutcome(domain.ExecutionUnknown)
	}

	// 6. Signal success
	s.Notifier.NotifySuccess(amount)

	return domain.SuccessOutcome(amount, beneficiary.ID)
}

// validationKind maps a transfer validation error to its outcome kind
func validationKind(err error) domain.ValidationKind {
	switch {
	case errors.Is(err, domain.ErrAmountNotPositive):
		return domain.ValidationAmountNotPositive
	case errors.Is(err, domain.ErrSamePayerAndPayee):
		return domain.ValidationSamePayerAndPayee
	default:
		return domain.ValidationInsufficientBalance
	}
}
