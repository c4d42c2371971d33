package domain

import "errors"

// Transfer validation errors, detected locally before any I/O.
var (
	ErrNoBeneficiarySelected = errors.New("no beneficiary selected")
	ErrInvalidBeneficiary    = errors.New("beneficiary not found in directory")
	ErrInvalidAmount         = errors.New("amount could not be parsed")
	ErrAmountNotPositive     = errors.New("amount must be greater than zero")
	ErrSamePayerAndPayee     = errors.New("payer and payee must be different")
	ErrInsufficientBalance   = errors.New("insufficient balance")
)

// Authentication errors.
var (
	ErrEmptyCredentials   = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
