package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/models"
)

func TestCreateCategory(t *testing.T) {
	t.Run("Creates User Category With Defaults", func(t *testing.T) {
		svc, _, categories, _ := newTestService()

		categories.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.Id != "" &&
				c.OwnerId == "user1" &&
				!c.IsSystem &&
				c.Icon == defaultCategoryIcon &&
				c.Color == defaultCategoryColor
		})).Return(func(ctx context.Context, c *models.Category) *models.Category { return c }, nil)

		created, err := svc.CreateCategory(context.Background(), testOwner, CategoryDraft{
			Name: "Subscriptions",
			Type: models.CategoryExpense,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Subscriptions", created.Name)
		categories.AssertExpectations(t)
	})

	t.Run("Rejects Unknown Type", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateCategory(context.Background(), testOwner, CategoryDraft{
			Name: "Subscriptions",
			Type: "savings",
		})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("Blocks Renaming System Category", func(t *testing.T) {
		svc, _, categories, _ := newTestService()

		categories.On("GetCategory", mock.Anything, "cat1", "user1").
			Return(&models.Category{Id: "cat1", Name: "Food & Dining", IsSystem: true}, nil)

		name := "Eating Out"
		_, err := svc.UpdateCategory(context.Background(), testOwner, "cat1", CategoryPatch{Name: &name})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Allows Restyling System Category", func(t *testing.T) {
		svc, _, categories, _ := newTestService()

		categories.On("GetCategory", mock.Anything, "cat1", "user1").
			Return(&models.Category{Id: "cat1", Name: "Food & Dining", IsSystem: true}, nil)
		categories.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.Color == "#000000"
		})).Return(func(ctx context.Context, c *models.Category) *models.Category { return c }, nil)

		color := "#000000"
		_, err := svc.UpdateCategory(context.Background(), testOwner, "cat1", CategoryPatch{Color: &color})

		assert.NoError(t, err)
		categories.AssertExpectations(t)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("Blocks System Category", func(t *testing.T) {
		svc, _, categories, _ := newTestService()

		categories.On("GetCategory", mock.Anything, "cat1", "user1").
			Return(&models.Category{Id: "cat1", IsSystem: true}, nil)

		err := svc.DeleteCategory(context.Background(), testOwner, "cat1")

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Blocks Referenced Category", func(t *testing.T) {
		svc, _, categories, transactions := newTestService()

		categories.On("GetCategory", mock.Anything, "cat1", "user1").
			Return(&models.Category{Id: "cat1"}, nil)
		transactions.On("CountTransactionsByCategory", mock.Anything, "cat1").
			Return(int64(3), nil)

		err := svc.DeleteCategory(context.Background(), testOwner, "cat1")

		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "3 transactions")
	})

	t.Run("Deletes Unreferenced User Category", func(t *testing.T) {
		svc, _, categories, transactions := newTestService()

		categories.On("GetCategory", mock.Anything, "cat1", "user1").
			Return(&models.Category{Id: "cat1"}, nil)
		transactions.On("CountTransactionsByCategory", mock.Anything, "cat1").
			Return(int64(0), nil)
		categories.On("DeleteCategory", mock.Anything, "cat1", "user1").Return(nil)

		err := svc.DeleteCategory(context.Background(), testOwner, "cat1")

		assert.NoError(t, err)
		categories.AssertExpectations(t)
	})
}

func TestSeedDefaultCategories(t *testing.T) {
	svc, _, categories, _ := newTestService()

	categories.On("SeedDefaultCategories", mock.Anything, "user1", mock.MatchedBy(func(cats []models.Category) bool {
		if len(cats) != len(models.DefaultCategories()) {
			return false
		}
		for _, c := range cats {
			if c.Id == "" || c.OwnerId != "user1" || !c.IsSystem {
				return false
			}
		}
		return true
	})).Return(nil)

	err := svc.SeedDefaultCategories(context.Background(), testOwner)

	assert.NoError(t, err)
	categories.AssertExpectations(t)
}
