package wallet

import (
	"context"

	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Overview aggregates what the wallet home screen needs in one call
type Overview struct {
	Balance       decimal.Decimal
	Beneficiaries []domain.Beneficiary
}

// Service provides read-only wallet data for the home screen
type Service struct {
	Ledger domain.Ledger
}

// NewService creates a new wallet Service instance
func NewService(ledger domain.Ledger) *Service {
	return &Service{Ledger: ledger}
}

// Overview returns the current balance and the beneficiary directory
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	balance, err := s.Ledger.GetBalance(ctx)
	if err != nil {
		return nil, err
	}

	beneficiaries, err := s.Ledger.GetBeneficiaries(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Balance:       balance,
		Beneficiaries: beneficiaries,
	}, nil
}
