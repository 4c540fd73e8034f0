package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
	"github.com/anikets/paisaledger/pkg/storage/mocks"
)

const testOwner = Owner("user1")

func newTestService() (*Service, *mocks.AccountStore, *mocks.CategoryStore, *mocks.TransactionStore) {
	accounts := new(mocks.AccountStore)
	categories := new(mocks.CategoryStore)
	transactions := new(mocks.TransactionStore)
	return NewService(accounts, categories, transactions), accounts, categories, transactions
}

// echoCreate makes CreateTransaction return whatever record it was given.
func echoCreate(transactions *mocks.TransactionStore) {
	transactions.On("CreateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
		Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
}

// echoGet makes GetTransaction return a record with the requested id.
func echoGet(transactions *mocks.TransactionStore) {
	transactions.On("GetTransaction", mock.Anything, mock.AnythingOfType("string"), "user1").
		Return(func(ctx context.Context, id, ownerID string) *models.Transaction {
			return &models.Transaction{Id: id, OwnerId: ownerID}
		}, nil)
}

func TestCreateTransaction(t *testing.T) {
	t.Run("Expense Subtracts From Bound Account", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		echoCreate(transactions)
		echoGet(transactions)
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", int64(-15000)).
			Return(int64(85000), nil)

		created, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:      models.Expense,
			Amount:    15000,
			AccountId: "acc1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		accounts.AssertExpectations(t)
		transactions.AssertExpectations(t)
	})

	t.Run("Income Adds To Bound Account", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		echoCreate(transactions)
		echoGet(transactions)
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", int64(50000)).
			Return(int64(150000), nil)

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:      models.Income,
			Amount:    50000,
			AccountId: "acc1",
		})

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
	})

	t.Run("Defaults Source And Timestamp", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Id != "" &&
				tx.OwnerId == "user1" &&
				tx.Source == models.SourceManual &&
				!tx.TransactionAt.IsZero()
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		echoGet(transactions)

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:   models.Expense,
			Amount: 100,
		})

		assert.NoError(t, err)
		transactions.AssertExpectations(t)
	})

	t.Run("Resolves Category By Name", func(t *testing.T) {
		svc, _, categories, transactions := newTestService()

		categories.On("FindCategoryByName", mock.Anything, "user1", "Food & Dining").
			Return(&models.Category{Id: "cat-food", Name: "Food & Dining"}, nil)
		transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.CategoryId == "cat-food"
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		transactions.On("GetTransaction", mock.Anything, mock.AnythingOfType("string"), "user1").
			Return(func(ctx context.Context, id, ownerID string) *models.Transaction {
				return &models.Transaction{Id: id, OwnerId: ownerID, CategoryId: "cat-food"}
			}, nil)

		created, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:         models.Expense,
			Amount:       100,
			CategoryName: "Food & Dining",
		})

		assert.NoError(t, err)
		assert.Equal(t, "cat-food", created.CategoryId)
		categories.AssertExpectations(t)
		transactions.AssertExpectations(t)
	})

	t.Run("Unresolved Category Name Leaves Unbound", func(t *testing.T) {
		svc, _, categories, transactions := newTestService()

		categories.On("FindCategoryByName", mock.Anything, "user1", "Nope").
			Return(nil, storage.ErrNotFound)
		transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.CategoryId == ""
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		echoGet(transactions)

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:         models.Expense,
			Amount:       100,
			CategoryName: "Nope",
		})

		assert.NoError(t, err)
		categories.AssertExpectations(t)
	})

	t.Run("Resolves Account By Last4", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		accounts.On("FindAccountByLast4", mock.Anything, "user1", "4242").
			Return(&models.Account{Id: "acc-hdfc"}, nil)
		transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.AccountId == "acc-hdfc"
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		echoGet(transactions)
		accounts.On("AdjustBalance", mock.Anything, "acc-hdfc", "user1", int64(-100)).
			Return(int64(900), nil)

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:         models.Expense,
			Amount:       100,
			AccountLast4: "4242",
		})

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
	})

	t.Run("No Bound Account Skips Reconciler", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		echoCreate(transactions)
		echoGet(transactions)

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:   models.Expense,
			Amount: 100,
		})

		assert.NoError(t, err)
		accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Unknown Type", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:   "refund",
			Amount: 100,
		})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Rejects Non-Positive Amount", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:   models.Expense,
			Amount: 0,
		})

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Reconciler Failure Surfaces After Persist", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		echoCreate(transactions)
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", int64(-100)).
			Return(int64(0), errors.New("provisioned throughput exceeded"))

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:      models.Expense,
			Amount:    100,
			AccountId: "acc1",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "balance not applied")
		transactions.AssertCalled(t, "CreateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction"))
	})

	t.Run("Duplicate Dedup Hash Conflict", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("CreateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
			Return(nil, storage.ErrConflict)

		_, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
			Type:    models.Expense,
			Amount:  100,
			SMSHash: "abc123",
		})

		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}

func TestUpdateTransaction(t *testing.T) {
	amount := func(v int64) *int64 { return &v }

	existing := func() *models.Transaction {
		return &models.Transaction{
			Id:        "tx1",
			OwnerId:   "user1",
			AccountId: "acc1",
			Type:      models.Expense,
			Amount:    15000,
		}
	}

	t.Run("Net Delta On Same Account", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").Return(existing(), nil)
		// old effect -15000, new effect -20000: one adjustment of -5000.
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", int64(-5000)).
			Return(int64(80000), nil)
		transactions.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Id == "tx1" && tx.Amount == 20000
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)

		_, err := svc.UpdateTransaction(context.Background(), testOwner, "tx1", TransactionPatch{
			Amount: amount(20000),
		})

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
		transactions.AssertExpectations(t)
	})

	t.Run("Type Flip Applies Double Delta", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").Return(existing(), nil)
		// -(-15000) + 15000 = +30000 in one adjustment.
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", int64(30000)).
			Return(int64(130000), nil)
		transactions.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
			Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)

		income := models.Income
		_, err := svc.UpdateTransaction(context.Background(), testOwner, "tx1", TransactionPatch{
			Type: &income,
		})

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
	})

	t.Run("Account Move Reverses Then Reapplies", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").Return(existing(), nil)
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", int64(15000)).
			Return(int64(100000), nil)
		accounts.On("AdjustBalance", mock.Anything, "acc2", "user1", int64(-15000)).
			Return(int64(35000), nil)
		transactions.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.AccountId == "acc2"
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)

		acc2 := "acc2"
		_, err := svc.UpdateTransaction(context.Background(), testOwner, "tx1", TransactionPatch{
			AccountId: &acc2,
		})

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
	})

	t.Run("Field-Only Change Skips Reconciler", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").Return(existing(), nil)
		transactions.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
			Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)

		notes := "groceries for the week"
		_, err := svc.UpdateTransaction(context.Background(), testOwner, "tx1", TransactionPatch{
			Notes: &notes,
		})

		assert.NoError(t, err)
		accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotFound For Foreign Owner", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").
			Return(nil, storage.ErrNotFound)

		_, err := svc.UpdateTransaction(context.Background(), testOwner, "tx1", TransactionPatch{
			Amount: amount(100),
		})

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	del := func(t *testing.T, txType models.TransactionType, wantDelta int64) {
		svc, accounts, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").Return(&models.Transaction{
			Id:        "tx1",
			OwnerId:   "user1",
			AccountId: "acc1",
			Type:      txType,
			Amount:    15000,
		}, nil)
		accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", wantDelta).
			Return(int64(0), nil)
		transactions.On("DeleteTransaction", mock.Anything, "tx1", "user1").Return(nil)

		err := svc.DeleteTransaction(context.Background(), testOwner, "tx1")

		assert.NoError(t, err)
		accounts.AssertExpectations(t)
		transactions.AssertExpectations(t)
	}

	t.Run("Expense Restores Amount", func(t *testing.T) {
		del(t, models.Expense, int64(15000))
	})

	t.Run("Income Removes Amount", func(t *testing.T) {
		del(t, models.Income, int64(-15000))
	})

	t.Run("Transfer Restores Amount", func(t *testing.T) {
		del(t, models.Transfer, int64(15000))
	})

	t.Run("Unbound Transaction Skips Reconciler", func(t *testing.T) {
		svc, accounts, _, transactions := newTestService()

		transactions.On("GetTransaction", mock.Anything, "tx1", "user1").Return(&models.Transaction{
			Id:      "tx1",
			OwnerId: "user1",
			Type:    models.Expense,
			Amount:  15000,
		}, nil)
		transactions.On("DeleteTransaction", mock.Anything, "tx1", "user1").Return(nil)

		err := svc.DeleteTransaction(context.Background(), testOwner, "tx1")

		assert.NoError(t, err)
		accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestBalanceLifecycle walks the full reconciliation sequence against a
// stateful fake balance: create an expense of 150.00 on an account holding
// 1000.00, raise it to 200.00, then delete it.
func TestBalanceLifecycle(t *testing.T) {
	svc, accounts, _, transactions := newTestService()

	balance := int64(100000)
	var stored models.Transaction

	accounts.On("AdjustBalance", mock.Anything, "acc1", "user1", mock.AnythingOfType("int64")).
		Return(func(ctx context.Context, id, ownerID string, delta int64) int64 {
			balance += delta
			return balance
		}, nil)
	transactions.On("CreateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
		Run(func(args mock.Arguments) { stored = *args.Get(1).(*models.Transaction) }).
		Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
	transactions.On("UpdateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
		Run(func(args mock.Arguments) { stored = *args.Get(1).(*models.Transaction) }).
		Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
	transactions.On("GetTransaction", mock.Anything, mock.AnythingOfType("string"), "user1").
		Return(func(ctx context.Context, id, ownerID string) *models.Transaction {
			out := stored
			return &out
		}, nil)
	transactions.On("DeleteTransaction", mock.Anything, mock.AnythingOfType("string"), "user1").Return(nil)

	created, err := svc.CreateTransaction(context.Background(), testOwner, TransactionDraft{
		Type:      models.Expense,
		Amount:    15000,
		AccountId: "acc1",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(85000), balance)

	newAmount := int64(20000)
	_, err = svc.UpdateTransaction(context.Background(), testOwner, created.Id, TransactionPatch{
		Amount: &newAmount,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(80000), balance)

	err = svc.DeleteTransaction(context.Background(), testOwner, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), balance)
}

func TestSyncTransactions(t *testing.T) {
	t.Run("Dedup Within Batch", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		// First sighting of h1 misses, the duplicate hits the stored record.
		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", "h1").
			Return(nil, storage.ErrNotFound).Once()
		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", "h1").
			Return(&models.Transaction{Id: "tx-h1"}, nil).Once()
		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", "h2").
			Return(nil, storage.ErrNotFound).Once()
		echoCreate(transactions)
		echoGet(transactions)

		drafts := []TransactionDraft{
			{Type: models.Expense, Amount: 100, SMSHash: "h1"},
			{Type: models.Expense, Amount: 100, SMSHash: "h1"},
			{Type: models.Income, Amount: 500, SMSHash: "h2"},
		}

		result, err := svc.SyncTransactions(context.Background(), testOwner, drafts)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Created)
		assert.Equal(t, 1, result.Skipped)
		assert.Empty(t, result.Errors)
		transactions.AssertExpectations(t)
	})

	t.Run("Identical Batch Is Fully Skipped On Replay", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", mock.AnythingOfType("string")).
			Return(&models.Transaction{Id: "already-there"}, nil)

		drafts := []TransactionDraft{
			{Type: models.Expense, Amount: 100, SMSHash: "h1"},
			{Type: models.Income, Amount: 500, SMSHash: "h2"},
		}

		result, err := svc.SyncTransactions(context.Background(), testOwner, drafts)

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 2, result.Skipped)
		transactions.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Defaults Source To SMS", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", "h1").
			Return(nil, storage.ErrNotFound)
		transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Source == models.SourceSMS
		})).Return(func(ctx context.Context, tx *models.Transaction) *models.Transaction { return tx }, nil)
		echoGet(transactions)

		result, err := svc.SyncTransactions(context.Background(), testOwner, []TransactionDraft{
			{Type: models.Expense, Amount: 100, SMSHash: "h1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		transactions.AssertExpectations(t)
	})

	t.Run("Invalid Draft Collected Without Aborting", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", mock.AnythingOfType("string")).
			Return(nil, storage.ErrNotFound)
		echoCreate(transactions)
		echoGet(transactions)

		drafts := []TransactionDraft{
			{Type: "bogus", Amount: 100, SMSHash: "h1"},
			{Type: models.Expense, Amount: 100, SMSHash: "h2"},
		}

		result, err := svc.SyncTransactions(context.Background(), testOwner, drafts)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.Skipped)
		assert.Len(t, result.Errors, 1)
		assert.Equal(t, 0, result.Errors[0].Index)
	})

	t.Run("Conflict Race Counts As Skipped", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("FindTransactionBySMSHash", mock.Anything, "user1", "h1").
			Return(nil, storage.ErrNotFound)
		transactions.On("CreateTransaction", mock.Anything, mock.AnythingOfType("*models.Transaction")).
			Return(nil, storage.ErrConflict)

		result, err := svc.SyncTransactions(context.Background(), testOwner, []TransactionDraft{
			{Type: models.Expense, Amount: 100, SMSHash: "h1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestGetTransactions(t *testing.T) {
	t.Run("Defaults And Total Pages", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f storage.TransactionFilter) bool {
			return f.OwnerID == "user1" && f.Page == 1 && f.Limit == 20
		})).Return([]models.Transaction{{Id: "tx1"}}, int64(45), nil)

		page, err := svc.GetTransactions(context.Background(), testOwner, ListQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 20, page.Pagination.Limit)
		assert.Equal(t, int64(45), page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		transactions.AssertExpectations(t)
	})

	t.Run("Caps Limit", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f storage.TransactionFilter) bool {
			return f.Limit == 100
		})).Return([]models.Transaction{}, int64(0), nil)

		_, err := svc.GetTransactions(context.Background(), testOwner, ListQuery{Limit: 5000})

		assert.NoError(t, err)
		transactions.AssertExpectations(t)
	})
}

func TestGetMonthlySummary(t *testing.T) {
	t.Run("Rejects Invalid Month", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.GetMonthlySummary(context.Background(), testOwner, 2026, 13)

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Passes Through", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		transactions.On("MonthlySummary", mock.Anything, "user1", 2026, 8).
			Return(&models.MonthlySummary{Year: 2026, Month: 8, TotalIncome: 500000, TotalExpense: 320000, NetSavings: 180000}, nil)

		summary, err := svc.GetMonthlySummary(context.Background(), testOwner, 2026, 8)

		assert.NoError(t, err)
		assert.Equal(t, int64(180000), summary.NetSavings)
	})
}

func TestGetAnalytics(t *testing.T) {
	t.Run("Rejects Inverted Range", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.GetAnalytics(context.Background(), testOwner, start, start.AddDate(0, 0, -7))

		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Bundles Aggregations", func(t *testing.T) {
		svc, _, _, transactions := newTestService()

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		transactions.On("DailyTrend", mock.Anything, "user1", start, end).
			Return([]models.DailyTrendPoint{{Date: "2026-08-01", Expense: 100}}, nil)
		transactions.On("TopMerchants", mock.Anything, "user1", start, end, 10).
			Return([]models.MerchantTotal{{Merchant: "Zomato", Total: 100, Count: 1}}, nil)
		transactions.On("SpendingByWeekday", mock.Anything, "user1", start, end).
			Return([]models.WeekdayTotal{{Weekday: 6, Total: 100}}, nil)

		analytics, err := svc.GetAnalytics(context.Background(), testOwner, start, end)

		assert.NoError(t, err)
		assert.Len(t, analytics.DailyTrend, 1)
		assert.Len(t, analytics.TopMerchants, 1)
		assert.Len(t, analytics.ByDayOfWeek, 1)
		transactions.AssertExpectations(t)
	})
}
