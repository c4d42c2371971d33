package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ledgerRepository implements domain.Ledger on top of Postgres.
// It is scoped to a single payer account identified by email.
//
// Expected schema:
//
//	accounts      (email TEXT PRIMARY KEY, balance DECIMAL NOT NULL)
//	beneficiaries (id UUID PRIMARY KEY, name TEXT, email TEXT, account_label TEXT)
//	transfers     (id UUID PRIMARY KEY, account_email TEXT, beneficiary_id UUID,
//	               amount DECIMAL NOT NULL, created_at TIMESTAMPTZ NOT NULL)
type ledgerRepository struct {
	db           *DB
	accountEmail string
}

// NewLedgerRepository creates a ledger scoped to the given payer account
func NewLedgerRepository(db *DB, accountEmail string) domain.Ledger {
	return &ledgerRepository{db: db, accountEmail: accountEmail}
}

// GetBalance returns the payer's current balance
func (r *ledgerRepository) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT balance
		FROM accounts
		WHERE email = $1
	`

	var balanceStr string
	err := r.db.QueryRowContext(ctx, query, r.accountEmail).Scan(&balanceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, fmt.Errorf("account not found: %w", err)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get balance: %w", err)
	}

	// Parse balance (DECIMAL) from its string form to avoid float rounding
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse balance: %w", err)
	}

	return balance, nil
}

// GetBeneficiaries returns the beneficiary directory
func (r *ledgerRepository) GetBeneficiaries(ctx context.Context) ([]domain.Beneficiary, error) {
	query := `
		SELECT id, name, email, account_label
		FROM beneficiaries
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	defer rows.Close()

	var beneficiaries []domain.Beneficiary
	for rows.Next() {
		var b domain.Beneficiary
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.AccountLabel); err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary: %w", err)
		}
		beneficiaries = append(beneficiaries, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate beneficiaries: %w", err)
	}

	return beneficiaries, nil
}

// Transfer debits the account inside a single transaction. The balance
// row is locked for the read-then-debit sequence, so concurrent
// transfers against the same account serialize here. A debit that would
// drive the balance negative is always rejected.
func (r *ledgerRepository) Transfer(ctx context.Context, beneficiaryID uuid.UUID, amount decimal.Decimal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balanceStr string
	err = tx.QueryRowContext(ctx, `
		SELECT balance
		FROM accounts
		WHERE email = $1
		FOR UPDATE
	`, r.accountEmail).Scan(&balanceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("account not found: %w", err)
		}
		return fmt.Errorf("failed to lock account: %w", err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return fmt.Errorf("failed to parse balance: %w", err)
	}

	if amount.GreaterThan(balance) {
		return domain.ErrInsufficientBalance
	}

	newBalance := balance.Sub(amount)

	_, err = tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance = $1
		WHERE email = $2
	`, newBalance.String(), r.accountEmail)
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transfers (id, account_email, beneficiary_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), r.accountEmail, beneficiaryID, amount.String(), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record transfer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}

	return nil
}
