package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/queue"
	queue_mocks "github.com/anikets/paisaledger/pkg/queue/mocks"
	storage_mocks "github.com/anikets/paisaledger/pkg/storage/mocks"
)

func TestNextCycleDraft(t *testing.T) {
	tx := &models.Transaction{
		Id:            "tx1",
		OwnerId:       "user1",
		AccountId:     "acc1",
		Type:          models.Expense,
		Amount:        49900,
		Merchant:      "Netflix",
		TransactionAt: time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC),
		IsRecurring:   true,
	}

	draft := nextCycleDraft(tx)

	assert.Equal(t, models.Expense, draft.Type)
	assert.Equal(t, int64(49900), draft.Amount)
	assert.Equal(t, models.SourceRecurring, draft.Source)
	assert.True(t, draft.IsRecurring)
	assert.Equal(t, time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC), draft.TransactionAt)
	// The hash pins the source transaction to the target month, so a rerun
	// of the schedule produces the same hash and gets deduplicated.
	assert.Equal(t, "recurring:tx1:2026-09", draft.SMSHash)
}

func TestHandleRequest(t *testing.T) {
	t.Run("Groups Drafts By Owner", func(t *testing.T) {
		mockStore := new(storage_mocks.TransactionStore)
		mockEnqueuer := new(queue_mocks.Enqueuer)
		store = mockStore
		enqueuer = mockEnqueuer

		mockStore.On("ListRecurringTransactions", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]models.Transaction{
				{Id: "tx1", OwnerId: "user1", Type: models.Expense, Amount: 49900, TransactionAt: time.Now(), IsRecurring: true},
				{Id: "tx2", OwnerId: "user1", Type: models.Expense, Amount: 9900, TransactionAt: time.Now(), IsRecurring: true},
				{Id: "tx3", OwnerId: "user2", Type: models.Income, Amount: 500000, TransactionAt: time.Now(), IsRecurring: true},
			}, nil)
		mockEnqueuer.On("EnqueueDrafts", mock.Anything, mock.MatchedBy(func(envelope queue.IngestEnvelope) bool {
			return envelope.OwnerId == "user1" && len(envelope.Drafts) == 2
		})).Return(nil).Once()
		mockEnqueuer.On("EnqueueDrafts", mock.Anything, mock.MatchedBy(func(envelope queue.IngestEnvelope) bool {
			return envelope.OwnerId == "user2" && len(envelope.Drafts) == 1
		})).Return(nil).Once()

		err := HandleRequest(context.Background())

		assert.NoError(t, err)
		mockEnqueuer.AssertExpectations(t)
	})

	t.Run("Empty Window Is A NoOp", func(t *testing.T) {
		mockStore := new(storage_mocks.TransactionStore)
		mockEnqueuer := new(queue_mocks.Enqueuer)
		store = mockStore
		enqueuer = mockEnqueuer

		mockStore.On("ListRecurringTransactions", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]models.Transaction{}, nil)

		err := HandleRequest(context.Background())

		assert.NoError(t, err)
		mockEnqueuer.AssertNotCalled(t, "EnqueueDrafts", mock.Anything, mock.Anything)
	})
}
