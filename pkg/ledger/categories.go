package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anikets/paisaledger/pkg/models"
)

const (
	defaultCategoryColor = "#8b5cf6"
	defaultCategoryIcon  = "tag"
)

// CategoryDraft is the input for creating a user category.
type CategoryDraft struct {
	Name     string
	Type     models.CategoryType
	Icon     string
	Color    string
	ParentId string
}

// CategoryPatch carries the mutable fields of a category update.
type CategoryPatch struct {
	Name  *string
	Icon  *string
	Color *string
}

// CreateCategory persists a new user-defined category.
func (s *Service) CreateCategory(ctx context.Context, owner Owner, draft CategoryDraft) (*models.Category, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidArgument)
	}
	if !draft.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %q", ErrInvalidArgument, draft.Type)
	}

	category := &models.Category{
		Id:        uuid.NewString(),
		OwnerId:   owner.String(),
		Name:      draft.Name,
		Type:      draft.Type,
		Icon:      draft.Icon,
		Color:     draft.Color,
		ParentId:  draft.ParentId,
		IsSystem:  false,
		CreatedAt: time.Now().UTC(),
	}
	if category.Icon == "" {
		category.Icon = defaultCategoryIcon
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}

	return s.categories.CreateCategory(ctx, category)
}

// GetCategory retrieves one owned category.
func (s *Service) GetCategory(ctx context.Context, owner Owner, id string) (*models.Category, error) {
	return s.categories.GetCategory(ctx, id, owner.String())
}

// ListCategories retrieves the owner's categories, optionally filtered by type.
func (s *Service) ListCategories(ctx context.Context, owner Owner, categoryType models.CategoryType) ([]models.Category, error) {
	if categoryType != "" && !categoryType.Valid() {
		return nil, fmt.Errorf("%w: unknown category type %q", ErrInvalidArgument, categoryType)
	}
	return s.categories.ListCategories(ctx, owner.String(), categoryType)
}

// UpdateCategory applies a patch to an owned category. System categories keep
// their name; icon and color stay editable.
func (s *Service) UpdateCategory(ctx context.Context, owner Owner, id string, patch CategoryPatch) (*models.Category, error) {
	category, err := s.categories.GetCategory(ctx, id, owner.String())
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if category.IsSystem {
			return nil, fmt.Errorf("%w: system categories cannot be renamed", ErrInvalidArgument)
		}
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: category name is required", ErrInvalidArgument)
		}
		category.Name = *patch.Name
	}
	if patch.Icon != nil {
		category.Icon = *patch.Icon
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}

	return s.categories.UpdateCategory(ctx, category)
}

// DeleteCategory removes a user category. System categories and categories
// still referenced by transactions are protected.
func (s *Service) DeleteCategory(ctx context.Context, owner Owner, id string) error {
	category, err := s.categories.GetCategory(ctx, id, owner.String())
	if err != nil {
		return err
	}
	if category.IsSystem {
		return fmt.Errorf("%w: system categories cannot be deleted", ErrInvalidArgument)
	}

	count, err := s.transactions.CountTransactionsByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: category has %d transactions", ErrInvalidArgument, count)
	}

	return s.categories.DeleteCategory(ctx, id, owner.String())
}

// SeedDefaultCategories clones the system category set for a new owner. It is
// a no-op for owners that already have categories.
func (s *Service) SeedDefaultCategories(ctx context.Context, owner Owner) error {
	defaults := models.DefaultCategories()
	now := time.Now().UTC()
	for i := range defaults {
		defaults[i].Id = uuid.NewString()
		defaults[i].OwnerId = owner.String()
		defaults[i].CreatedAt = now
	}
	return s.categories.SeedDefaultCategories(ctx, owner.String(), defaults)
}

// GetCategoryStats aggregates expense totals per category over [start, end].
func (s *Service) GetCategoryStats(ctx context.Context, owner Owner, start, end time.Time) ([]models.CategoryStat, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidArgument)
	}
	return s.categories.CategoryStats(ctx, owner.String(), start, end)
}
