package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OutcomeStatus tags the terminal result of one transfer attempt
type OutcomeStatus string

const (
	OutcomeSuccess             OutcomeStatus = "SUCCESS"
	OutcomeValidationFailed    OutcomeStatus = "VALIDATION_FAILED"
	OutcomeAuthorizationDenied OutcomeStatus = "AUTHORIZATION_DENIED"
	OutcomeExecutionFailed     OutcomeStatus = "EXECUTION_FAILED"
)

// ValidationKind identifies which business rule rejected the transfer
type ValidationKind string

const (
	ValidationNoBeneficiarySelected ValidationKind = "NO_BENEFICIARY_SELECTED"
	ValidationInvalidBeneficiary    ValidationKind = "INVALID_BENEFICIARY"
	ValidationInvalidAmount         ValidationKind = "INVALID_AMOUNT"
	ValidationAmountNotPositive     ValidationKind = "AMOUNT_MUST_BE_GREATER_THAN_ZERO"
	ValidationSamePayerAndPayee     ValidationKind = "PAYER_AND_PAYEE_MUST_BE_DIFFERENT"
	ValidationInsufficientBalance   ValidationKind = "INSUFFICIENT_BALANCE"
)

// ExecutionKind identifies why the ledger debit failed
type ExecutionKind string

const (
	ExecutionInsufficientBalance ExecutionKind = "INSUFFICIENT_BALANCE"
	ExecutionUnknown             ExecutionKind = "UNKNOWN"
)

// TransferOutcome is the terminal tagged result of one workflow invocation.
// Every failure path is represented here; the workflow never returns an
// unstructured error past its boundary.
type TransferOutcome struct {
	Status         OutcomeStatus
	ValidationKind ValidationKind // set when Status == OutcomeValidationFailed
	ExecutionKind  ExecutionKind  // set when Status == OutcomeExecutionFailed
	DenialReason   string         // set when Status == OutcomeAuthorizationDenied
	Amount         decimal.Decimal
	BeneficiaryID  uuid.UUID
}

// SuccessOutcome builds the outcome for a completed transfer
func SuccessOutcome(amount decimal.Decimal, beneficiaryID uuid.UUID) TransferOutcome {
	return TransferOutcome{
		Status:        OutcomeSuccess,
		Amount:        amount,
		BeneficiaryID: beneficiaryID,
	}
}

// ValidationFailedOutcome builds the outcome for a rejected submission
func ValidationFailedOutcome(kind ValidationKind) TransferOutcome {
	return TransferOutcome{
		Status:         OutcomeValidationFailed,
		ValidationKind: kind,
	}
}

// AuthorizationDeniedOutcome builds the outcome for a gateway denial.
// The reason is surfaced verbatim and may be empty.
func AuthorizationDeniedOutcome(reason string) TransferOutcome {
	return TransferOutcome{
		Status:       OutcomeAuthorizationDenied,
		DenialReason: reason,
	}
}

// ExecutionFailedOutcome builds the outcome for a failed ledger debit
func ExecutionFailedOutcome(kind ExecutionKind) TransferOutcome {
	return TransferOutcome{
		Status:        OutcomeExecutionFailed,
		ExecutionKind: kind,
	}
}

// Message returns the user-facing description of the outcome.
// A denial without a gateway-supplied reason falls back to a generic
// not-authorized message.
func (o TransferOutcome) Message() string {
	switch o.Status {
	case OutcomeSuccess:
		return "transfer completed"

	case OutcomeValidationFailed:
		switch o.ValidationKind {
		case ValidationNoBeneficiarySelected:
			return "no beneficiary selected"
		case ValidationInvalidBeneficiary:
			return "selected beneficiary is not available"
		case ValidationInvalidAmount:
			return "amount is not a valid number"
		case ValidationAmountNotPositive:
			return "amount must be greater than zero"
		case ValidationSamePayerAndPayee:
			return "payer and payee must be different"
		case ValidationInsufficientBalance:
			return "insufficient balance"
		}
		return "transfer rejected"

	case OutcomeAuthorizationDenied:
		if o.DenialReason != "" {
			return o.DenialReason
		}
		return "operation not authorized"

	case OutcomeExecutionFailed:
		if o.ExecutionKind == ExecutionInsufficientBalance {
			return "insufficient balance"
		}
		return "transfer could not be completed"
	}

	return "transfer could not be completed"
}
