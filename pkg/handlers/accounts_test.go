package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/api"
	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

func TestCreateAccountHandler(t *testing.T) {
	t.Run("Creates With Opening Balance In Paise", func(t *testing.T) {
		f := newFixture()

		f.accounts.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return a.Name == "HDFC Savings" &&
				a.Type == models.Bank &&
				a.Balance == 250000 &&
				a.OpeningBalance == 250000
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		rec := f.request(t, http.MethodPost, "/api/v1/accounts", api.NewAccount{
			Name:    "HDFC Savings",
			Type:    "bank",
			Balance: 2500.00,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[api.Account](t, rec)
		assert.Equal(t, 2500.00, body.Balance)
		f.accounts.AssertExpectations(t)
	})

	t.Run("Rejects Bad Type", func(t *testing.T) {
		f := newFixture()

		rec := f.request(t, http.MethodPost, "/api/v1/accounts", api.NewAccount{
			Name: "Stash",
			Type: "mattress",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTotalBalanceHandler(t *testing.T) {
	f := newFixture()

	f.accounts.On("TotalBalance", mock.Anything, "user1").Return(int64(1234550), nil)

	rec := f.request(t, http.MethodGet, "/api/v1/accounts/total-balance", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[api.TotalBalance](t, rec)
	assert.Equal(t, 12345.50, body.TotalBalance)
}

func TestDeleteAccountHandler(t *testing.T) {
	t.Run("Referenced Account Is Deactivated", func(t *testing.T) {
		f := newFixture()

		f.accounts.On("GetAccount", mock.Anything, "acc1", "user1").
			Return(&models.Account{Id: "acc1", OwnerId: "user1", Name: "HDFC Savings", IsActive: true}, nil)
		f.transactions.On("CountTransactionsByAccount", mock.Anything, "acc1").
			Return(int64(4), nil)
		f.accounts.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return !a.IsActive
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		rec := f.request(t, http.MethodDelete, "/api/v1/accounts/acc1", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.accounts.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Account Is 404", func(t *testing.T) {
		f := newFixture()

		f.accounts.On("GetAccount", mock.Anything, "missing", "user1").
			Return(nil, storage.ErrNotFound)

		rec := f.request(t, http.MethodDelete, "/api/v1/accounts/missing", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoryHandlers(t *testing.T) {
	t.Run("Delete System Category Is 400", func(t *testing.T) {
		f := newFixture()

		f.categories.On("GetCategory", mock.Anything, "cat1", "user1").
			Return(&models.Category{Id: "cat1", Name: "Food & Dining", IsSystem: true}, nil)

		rec := f.request(t, http.MethodDelete, "/api/v1/categories/cat1", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Seed Returns NoContent", func(t *testing.T) {
		f := newFixture()

		f.categories.On("SeedDefaultCategories", mock.Anything, "user1", mock.AnythingOfType("[]models.Category")).
			Return(nil)

		rec := f.request(t, http.MethodPost, "/api/v1/categories/seed", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.categories.AssertExpectations(t)
	})

	t.Run("List Filters By Type", func(t *testing.T) {
		f := newFixture()

		f.categories.On("ListCategories", mock.Anything, "user1", models.CategoryExpense).
			Return([]models.Category{{Id: "cat1", Name: "Food & Dining", Type: models.CategoryExpense}}, nil)

		rec := f.request(t, http.MethodGet, "/api/v1/categories?type=expense", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[[]api.Category](t, rec)
		assert.Len(t, body, 1)
		assert.Equal(t, "Food & Dining", body[0].Name)
	})
}
