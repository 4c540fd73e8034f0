package storage

import (
	"context"
	"time"

	"github.com/anikets/paisaledger/pkg/models"
)

// CategoryStore defines the interface for managing categories.
type CategoryStore interface {
	// GetCategory retrieves a category by id for the given owner.
	GetCategory(ctx context.Context, id, ownerID string) (*models.Category, error)

	// FindCategoryByName resolves a category by case-insensitive exact name
	// match for the owner. It only resolves, never creates.
	FindCategoryByName(ctx context.Context, ownerID, name string) (*models.Category, error)

	// ListCategories retrieves the owner's categories ordered by type then
	// name. An empty categoryType returns both partitions.
	ListCategories(ctx context.Context, ownerID string, categoryType models.CategoryType) ([]models.Category, error)

	// CreateCategory persists a new category. Returns ErrConflict when the
	// owner already has a category with the same name and type.
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)

	// UpdateCategory replaces the mutable fields of an existing category.
	UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error)

	// DeleteCategory removes a category record permanently.
	DeleteCategory(ctx context.Context, id, ownerID string) error

	// SeedDefaultCategories inserts the given categories for the owner if the
	// owner has none yet. It is a no-op for already-seeded owners.
	SeedDefaultCategories(ctx context.Context, ownerID string, categories []models.Category) error

	// CategoryStats aggregates expense totals per category over [start, end],
	// ordered by total descending.
	CategoryStats(ctx context.Context, ownerID string, start, end time.Time) ([]models.CategoryStat, error)
}
