package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed UUIDs for the seeded beneficiary directory so clients can
// reference the same beneficiaries across restarts
var (
	BeneficiaryAlice = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	BeneficiaryBob   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	BeneficiaryCarol = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

// Ledger is an in-memory domain.Ledger. The balance is an explicitly
// owned resource guarded by a mutex, so the read-then-debit sequence
// inside Transfer is serialized across concurrent calls.
type Ledger struct {
	mu            sync.Mutex
	balance       decimal.Decimal
	beneficiaries []domain.Beneficiary
}

// NewLedger creates a ledger seeded with the sample balance and directory
func NewLedger() *Ledger {
	return NewLedgerWith(decimal.NewFromInt(350), []domain.Beneficiary{
		{ID: BeneficiaryAlice, Name: "Alice Johnson", Email: "alice@example.com", AccountLabel: "Checking account"},
		{ID: BeneficiaryBob, Name: "Bob Williams", Email: "bob@example.com", AccountLabel: "Savings account"},
		{ID: BeneficiaryCarol, Name: "Carol Smith", Email: "carol@example.com", AccountLabel: "Checking account"},
	})
}

// NewLedgerWith creates a ledger with an explicit balance and directory
func NewLedgerWith(balance decimal.Decimal, beneficiaries []domain.Beneficiary) *Ledger {
	return &Ledger{
		balance:       balance,
		beneficiaries: beneficiaries,
	}
}

// GetBalance returns the payer's current balance
func (l *Ledger) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balance, nil
}

// GetBeneficiaries returns a copy of the beneficiary directory
func (l *Ledger) GetBeneficiaries(ctx context.Context) ([]domain.Beneficiary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	beneficiaries := make([]domain.Beneficiary, len(l.beneficiaries))
	copy(beneficiaries, l.beneficiaries)

	return beneficiaries, nil
}

// Transfer debits the balance in favor of the given beneficiary.
// The beneficiary must exist in the directory, and a debit that would
// drive the balance negative is always rejected.
func (l *Ledger) Transfer(ctx context.Context, beneficiaryID uuid.UUID, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	for _, b := range l.beneficiaries {
		if b.ID == beneficiaryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("transfer to %s: %w", beneficiaryID, domain.ErrInvalidBeneficiary)
	}

	if amount.GreaterThan(l.balance) {
		return domain.ErrInsufficientBalance
	}

	l.balance = l.balance.Sub(amount)

	return nil
}
