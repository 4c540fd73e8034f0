package postgres

import (
	"context"
	"fmt"

	"github.com/anikets/paisaledger/pkg/models"
)

// ListAllAccounts retrieves every account regardless of owner.
func (s *Store) ListAllAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("failed to list all accounts: %w", err)
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

// SumTransactionDeltas computes the signed sum of all transactions bound to
// the account, income positive, expense and transfer negative.
func (s *Store) SumTransactionDeltas(ctx context.Context, accountID string) (int64, error) {
	var sum int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
		 FROM transactions WHERE account_id = $1`,
		accountID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum transaction deltas: %w", err)
	}
	return sum, nil
}
