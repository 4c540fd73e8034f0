package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

func TestCreateAccount(t *testing.T) {
	t.Run("Sets Defaults And Opening Balance", func(t *testing.T) {
		svc, accounts, _, _ := newTestService()

		accounts.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return a.Id != "" &&
				a.OwnerId == "user1" &&
				a.Balance == 250000 &&
				a.OpeningBalance == 250000 &&
				a.IsActive &&
				a.Color == defaultAccountColor &&
				a.Icon == defaultAccountIcon
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		created, err := svc.CreateAccount(context.Background(), testOwner, AccountDraft{
			Name:    "HDFC Savings",
			Type:    models.Bank,
			Balance: 250000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "HDFC Savings", created.Name)
		accounts.AssertExpectations(t)
	})

	t.Run("Rejects Missing Name", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateAccount(context.Background(), testOwner, AccountDraft{
			Type: models.Bank,
		})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Rejects Unknown Type", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateAccount(context.Background(), testOwner, AccountDraft{
			Name: "Stash",
			Type: "mattress",
		})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Rejects Negative Opening Balance", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateAccount(context.Background(), testOwner, AccountDraft{
			Name:    "HDFC Savings",
			Type:    models.Bank,
			Balance: -100,
		})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("Hard Deletes When Unreferenced", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		accounts.On("GetAccount", mock.Anything, "acc1", "user1").
			Return(&models.Account{Id: "acc1", OwnerId: "user1", Name: "HDFC Savings", IsActive: true}, nil)
		transactions.On("CountTransactionsByAccount", mock.Anything, "acc1").
			Return(int64(0), nil)
		accounts.On("DeleteAccount", mock.Anything, "acc1", "user1").Return(nil)

		err := svc.DeleteAccount(context.Background(), testOwner, "acc1")

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
	})

	t.Run("Soft Deletes When Referenced", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		accounts.On("GetAccount", mock.Anything, "acc1", "user1").
			Return(&models.Account{Id: "acc1", OwnerId: "user1", Name: "HDFC Savings", IsActive: true}, nil)
		transactions.On("CountTransactionsByAccount", mock.Anything, "acc1").
			Return(int64(12), nil)
		accounts.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
			return a.Id == "acc1" && !a.IsActive
		})).Return(func(ctx context.Context, a *models.Account) *models.Account { return a }, nil)

		err := svc.DeleteAccount(context.Background(), testOwner, "acc1")

		assert.NoError(t, err)
		accounts.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
		accounts.AssertExpectations(t)
	})

	t.Run("NotFound Passes Through", func(t *testing.T) {
		svc, accounts, _, _ := newTestService()

		accounts.On("GetAccount", mock.Anything, "acc1", "user1").
			Return(nil, storage.ErrNotFound)

		err := svc.DeleteAccount(context.Background(), testOwner, "acc1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetTotalBalance(t *testing.T) {
	svc, accounts, _, _ := newTestService()

	accounts.On("TotalBalance", mock.Anything, "user1").Return(int64(1234500), nil)

	total, err := svc.GetTotalBalance(context.Background(), testOwner)

	assert.NoError(t, err)
	assert.Equal(t, int64(1234500), total)
}
