package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

const accountColumns = `id, user_id, name, type, balance, opening_balance,
	COALESCE(institution, ''), COALESCE(account_number, ''),
	COALESCE(last_4_digits, ''), color, icon, is_active, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.Id, &a.OwnerId, &a.Name, &a.Type, &a.Balance, &a.OpeningBalance,
		&a.Institution, &a.AccountNumber, &a.Last4Digits, &a.Color, &a.Icon,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccount retrieves an account by id, verifying ownership.
func (s *Store) GetAccount(ctx context.Context, id, ownerID string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// FindAccountByLast4 resolves an active account by its masked suffix.
func (s *Store) FindAccountByLast4(ctx context.Context, ownerID, last4 string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 WHERE user_id = $1 AND last_4_digits = $2 AND is_active
		 LIMIT 1`,
		ownerID, last4,
	)
	account, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by suffix: %w", err)
	}
	return account, nil
}

// CreateAccount persists a new account. The (user_id, name) unique constraint
// enforces name uniqueness per owner.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, user_id, name, type, balance, opening_balance,
			institution, account_number, last_4_digits, color, icon, is_active,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		account.Id, account.OwnerId, account.Name, account.Type, account.Balance,
		account.OpeningBalance,
		nullString(account.Institution), nullString(account.AccountNumber),
		nullString(account.Last4Digits), account.Color, account.Icon,
		account.IsActive, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("account name %q: %w", account.Name, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// UpdateAccount replaces the mutable fields of an existing account. The
// balance column is excluded: only AdjustBalance may move it.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE accounts SET name = $1, type = $2, institution = $3,
			account_number = $4, last_4_digits = $5, color = $6, icon = $7,
			is_active = $8, updated_at = $9
		 WHERE id = $10 AND user_id = $11
		 RETURNING `+accountColumns,
		account.Name, account.Type, nullString(account.Institution),
		nullString(account.AccountNumber), nullString(account.Last4Digits),
		account.Color, account.Icon, account.IsActive, account.UpdatedAt,
		account.Id, account.OwnerId,
	)
	updated, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("account name %q: %w", account.Name, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return updated, nil
}

// DeleteAccount removes an account record permanently.
func (s *Store) DeleteAccount(ctx context.Context, id, ownerID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListAccounts retrieves the owner's active accounts ordered by name.
func (s *Store) ListAccounts(ctx context.Context, ownerID string) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts
		 WHERE user_id = $1 AND is_active
		 ORDER BY name`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

// AdjustBalance applies the delta in a single UPDATE so the read-modify-write
// happens inside the database and concurrent adjustments serialize on the row.
func (s *Store) AdjustBalance(ctx context.Context, id, ownerID string, delta int64) (int64, error) {
	var balance int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE accounts SET balance = balance + $1, updated_at = now()
		 WHERE id = $2 AND user_id = $3
		 RETURNING balance`,
		delta, id, ownerID,
	).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust account balance: %w", err)
	}
	return balance, nil
}

// TotalBalance sums the balances of the owner's active accounts.
func (s *Store) TotalBalance(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1 AND is_active`,
		ownerID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum account balances: %w", err)
	}
	return total, nil
}
