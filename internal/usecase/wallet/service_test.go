package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLedger is a mock implementation of domain.Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedger) GetBeneficiaries(ctx context.Context) ([]domain.Beneficiary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Beneficiary), args.Error(1)
}

func (m *MockLedger) Transfer(ctx context.Context, beneficiaryID uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, beneficiaryID, amount)
	return args.Error(0)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	ledger := new(MockLedger)
	service := NewService(ledger)

	beneficiaries := []domain.Beneficiary{
		{ID: uuid.New(), Name: "Alice Johnson", Email: "alice@example.com", AccountLabel: "Checking"},
		{ID: uuid.New(), Name: "Bob Williams", Email: "bob@example.com", AccountLabel: "Savings"},
	}
	ledger.On("GetBalance", ctx).Return(decimal.NewFromInt(350), nil)
	ledger.On("GetBeneficiaries", ctx).Return(beneficiaries, nil)

	overview, err := service.Overview(ctx)

	require.NoError(t, err)
	assert.True(t, overview.Balance.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, beneficiaries, overview.Beneficiaries)
}

func TestOverview_BalanceError(t *testing.T) {
	ctx := context.Background()
	ledger := new(MockLedger)
	service := NewService(ledger)

	ledger.On("GetBalance", ctx).Return(decimal.Decimal{}, errors.New("connection refused"))

	overview, err := service.Overview(ctx)

	assert.Error(t, err)
	assert.Nil(t, overview)
	ledger.AssertNotCalled(t, "GetBeneficiaries", mock.Anything)
}
