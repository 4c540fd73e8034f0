package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

const categoryColumns = `id, user_id, name, type, icon, color, COALESCE(parent_id::text, ''), is_system, created_at`

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.Id, &c.OwnerId, &c.Name, &c.Type, &c.Icon, &c.Color, &c.ParentId, &c.IsSystem, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCategory retrieves a category by id, verifying ownership.
func (s *Store) GetCategory(ctx context.Context, id, ownerID string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	category, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// FindCategoryByName resolves a category by case-insensitive exact name match.
func (s *Store) FindCategoryByName(ctx context.Context, ownerID, name string) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE user_id = $1 AND lower(name) = lower($2)
		 LIMIT 1`,
		ownerID, name,
	)
	category, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return category, nil
}

// ListCategories retrieves the owner's categories ordered by type then name.
func (s *Store) ListCategories(ctx context.Context, ownerID string, categoryType models.CategoryType) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1`
	args := []any{ownerID}
	if categoryType != "" {
		query += ` AND type = $2`
		args = append(args, categoryType)
	}
	query += ` ORDER BY type, name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

// CreateCategory persists a new category. The (user_id, name, type) unique
// constraint enforces uniqueness per owner partition.
func (s *Store) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, type, icon, color, parent_id, is_system, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)`,
		category.Id, category.OwnerId, category.Name, category.Type,
		category.Icon, category.Color, category.ParentId, category.IsSystem, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %q (%s): %w", category.Name, category.Type, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// UpdateCategory replaces the mutable fields of an existing category.
func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, icon = $2, color = $3, parent_id = NULLIF($4, '')::uuid
		 WHERE id = $5 AND user_id = $6`,
		category.Name, category.Icon, category.Color, category.ParentId,
		category.Id, category.OwnerId,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %q (%s): %w", category.Name, category.Type, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, storage.ErrNotFound
	}
	return category, nil
}

// DeleteCategory removes a category record permanently.
func (s *Store) DeleteCategory(ctx context.Context, id, ownerID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// SeedDefaultCategories inserts the default set for an owner with no categories yet.
func (s *Store) SeedDefaultCategories(ctx context.Context, ownerID string, categories []models.Category) error {
	var count int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE user_id = $1`, ownerID,
	).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, user_id, name, type, icon, color, is_system, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.Id, ownerID, c.Name, c.Type, c.Icon, c.Color, c.IsSystem, c.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// CategoryStats aggregates expense totals per category over the date range.
func (s *Store) CategoryStats(ctx context.Context, ownerID string, start, end time.Time) ([]models.CategoryStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.category_id, c.name, c.icon, c.color,
			SUM(t.amount) AS total, COUNT(t.id) AS count
		 FROM transactions t
		 JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = $1 AND t.type = 'expense'
		   AND t.transaction_at BETWEEN $2 AND $3
		 GROUP BY t.category_id, c.name, c.icon, c.color
		 ORDER BY total DESC`,
		ownerID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var stat models.CategoryStat
		if err := rows.Scan(&stat.CategoryId, &stat.Name, &stat.Icon, &stat.Color, &stat.Total, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category stat: %w", err)
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}
