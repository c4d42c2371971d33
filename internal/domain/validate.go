package domain

import "github.com/shopspring/decimal"

// ValidateTransfer enforces the transfer business rules before any side
// effect occurs. Rules are checked in order and the first violation wins:
//  1. Amount must be strictly greater than zero.
//  2. Payer and payee must be different users (email is the identity key).
//  3. The payer must have enough balance to cover the amount.
//
// Pure and deterministic; safe to call repeatedly with the same inputs.
func ValidateTransfer(payer User, beneficiary Beneficiary, amount, currentBalance decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}

	if payer.Email == beneficiary.Email {
		return ErrSamePayerAndPayee
	}

	if amount.GreaterThan(currentBalance) {
		return ErrInsufficientBalance
	}

	return nil
}
