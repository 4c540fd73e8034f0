package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

const transactionColumns = `t.id, t.user_id, COALESCE(t.account_id::text, ''),
	COALESCE(t.category_id::text, ''), t.type, t.amount, COALESCE(t.description, ''),
	COALESCE(t.merchant, ''), COALESCE(t.reference_id, ''), t.source, t.transaction_at,
	COALESCE(t.location, ''), t.tags, COALESCE(t.notes, ''), t.is_recurring,
	COALESCE(t.sms_hash, ''), t.created_at, t.updated_at,
	COALESCE(c.name, ''), COALESCE(c.icon, ''), COALESCE(c.color, ''), COALESCE(a.name, '')`

const transactionJoins = ` FROM transactions t
	LEFT JOIN categories c ON t.category_id = c.id
	LEFT JOIN accounts a ON t.account_id = a.id`

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	var tx models.Transaction
	var tags pq.StringArray
	err := row.Scan(
		&tx.Id, &tx.OwnerId, &tx.AccountId, &tx.CategoryId, &tx.Type, &tx.Amount,
		&tx.Description, &tx.Merchant, &tx.ReferenceId, &tx.Source, &tx.TransactionAt,
		&tx.Location, &tags, &tx.Notes, &tx.IsRecurring, &tx.SMSHash,
		&tx.CreatedAt, &tx.UpdatedAt,
		&tx.CategoryName, &tx.CategoryIcon, &tx.CategoryColor, &tx.AccountName,
	)
	if err != nil {
		return nil, err
	}
	tx.Tags = tags
	return &tx, nil
}

// GetTransaction retrieves a transaction by id for the owner, with category
// and account display fields joined in.
func (s *Store) GetTransaction(ctx context.Context, id, ownerID string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+transactionJoins+` WHERE t.id = $1 AND t.user_id = $2`,
		id, ownerID,
	)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// escapeLikePattern escapes LIKE metacharacters so a search string is always
// matched literally.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

var sortColumns = map[string]string{
	"transaction_at": "t.transaction_at",
	"amount":         "t.amount",
	"created_at":     "t.created_at",
	"merchant":       "t.merchant",
}

// buildFilter assembles the shared WHERE clause for the page and count queries.
func buildFilter(filter storage.TransactionFilter) (string, []any) {
	conds := []string{"t.user_id = $1"}
	args := []any{filter.OwnerID}

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Type != "" {
		add("t.type = $%d", filter.Type)
	}
	if filter.CategoryID != "" {
		add("t.category_id = $%d", filter.CategoryID)
	}
	if filter.AccountID != "" {
		add("t.account_id = $%d", filter.AccountID)
	}
	if !filter.StartDate.IsZero() {
		add("t.transaction_at >= $%d", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		add("t.transaction_at <= $%d", filter.EndDate)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(t.description ILIKE $%d OR t.merchant ILIKE $%d OR t.notes ILIKE $%d)", n, n, n))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListTransactions returns one page of matches plus the total computed by an
// independent count query over the same predicate.
func (s *Store) ListTransactions(ctx context.Context, filter storage.TransactionFilter) ([]models.Transaction, int64, error) {
	where, args := buildFilter(filter)

	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions t`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "t.transaction_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	args = append(args, limit, (page-1)*limit)

	query := `SELECT ` + transactionColumns + transactionJoins + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, direction, len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	items := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		items = append(items, *tx)
	}
	return items, total, rows.Err()
}

// CreateTransaction persists a new transaction record. The sms_hash unique
// index enforces at-most-once ingestion per external message.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, account_id, category_id, type, amount,
			description, merchant, reference_id, source, transaction_at, location,
			tags, notes, is_recurring, sms_hash, created_at, updated_at)
		 VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid, $5, $6,
			$7, $8, $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''), $17, $18)`,
		tx.Id, tx.OwnerId, tx.AccountId, tx.CategoryId, tx.Type, tx.Amount,
		nullString(tx.Description), nullString(tx.Merchant), nullString(tx.ReferenceId),
		tx.Source, tx.TransactionAt, nullString(tx.Location),
		pq.Array(tx.Tags), nullString(tx.Notes), tx.IsRecurring, tx.SMSHash,
		tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("sms_hash %s: %w", tx.SMSHash, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransaction replaces an existing record keyed by id+owner.
func (s *Store) UpdateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET account_id = NULLIF($1, '')::uuid,
			category_id = NULLIF($2, '')::uuid, type = $3, amount = $4,
			description = $5, merchant = $6, reference_id = $7, source = $8,
			transaction_at = $9, location = $10, tags = $11, notes = $12,
			is_recurring = $13, updated_at = $14
		 WHERE id = $15 AND user_id = $16`,
		tx.AccountId, tx.CategoryId, tx.Type, tx.Amount,
		nullString(tx.Description), nullString(tx.Merchant), nullString(tx.ReferenceId),
		tx.Source, tx.TransactionAt, nullString(tx.Location), pq.Array(tx.Tags),
		nullString(tx.Notes), tx.IsRecurring, tx.UpdatedAt,
		tx.Id, tx.OwnerId,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, storage.ErrNotFound
	}
	return tx, nil
}

// DeleteTransaction removes a transaction record permanently.
func (s *Store) DeleteTransaction(ctx context.Context, id, ownerID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// FindTransactionBySMSHash retrieves the owner's transaction with the given hash.
func (s *Store) FindTransactionBySMSHash(ctx context.Context, ownerID, hash string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+transactionJoins+` WHERE t.user_id = $1 AND t.sms_hash = $2`,
		ownerID, hash,
	)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by sms_hash: %w", err)
	}
	return tx, nil
}

// CountTransactionsByAccount counts transactions bound to an account.
func (s *Store) CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions by account: %w", err)
	}
	return count, nil
}

// CountTransactionsByCategory counts transactions bound to a category.
func (s *Store) CountTransactionsByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions by category: %w", err)
	}
	return count, nil
}

// ListRecurringTransactions retrieves recurring-flagged transactions with
// transaction_at at or after the cutoff, across owners.
func (s *Store) ListRecurringTransactions(ctx context.Context, since time.Time) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transactionColumns+transactionJoins+` WHERE t.is_recurring AND t.transaction_at >= $1`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}
