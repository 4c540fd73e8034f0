package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
	"github.com/anikets/paisaledger/pkg/storage/dynamodb/mocks"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 12, 0, 0, 0, time.UTC)
}

func fixtureItems(t *testing.T) []map[string]types.AttributeValue {
	t.Helper()
	records := []models.Transaction{
		{Id: "tx1", OwnerId: "user1", Type: models.Expense, Amount: 15000, Merchant: "Zomato", TransactionAt: day(1)},
		{Id: "tx2", OwnerId: "user1", Type: models.Expense, Amount: 4000, Merchant: "Swiggy", TransactionAt: day(2)},
		{Id: "tx3", OwnerId: "user1", Type: models.Income, Amount: 500000, Merchant: "Acme Corp", TransactionAt: day(3)},
	}
	items := make([]map[string]types.AttributeValue, 0, len(records))
	for _, record := range records {
		av, err := attributevalue.MarshalMap(record)
		assert.NoError(t, err)
		items = append(items, av)
	}
	return items
}

func TestListTransactions(t *testing.T) {
	newStore := func() (*Store, *mocks.DynamoDBAPI) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{
			Client:                mockClient,
			TransactionsTableName: "transactions",
			AccountsTableName:     "accounts",
			CategoriesTableName:   "categories",
		}
		return store, mockClient
	}

	t.Run("Filters And Counts Before Paging", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == ownerTransactionAtIndex &&
				*input.KeyConditionExpression == "owner_id = :owner"
		})).Return(&dynamodb.QueryOutput{Items: fixtureItems(t)}, nil).Once()

		items, total, err := store.ListTransactions(context.Background(), storage.TransactionFilter{
			OwnerID: "user1",
			Type:    models.Expense,
			Page:    1,
			Limit:   1,
		})

		assert.NoError(t, err)
		// Two expenses match; the page holds one but the total counts both.
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 1)
		mockClient.AssertExpectations(t)
	})

	t.Run("Search Matches Merchant Case-Insensitively", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{Items: fixtureItems(t)}, nil).Once()

		items, total, err := store.ListTransactions(context.Background(), storage.TransactionFilter{
			OwnerID: "user1",
			Search:  "zomato",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "tx1", items[0].Id)
	})

	t.Run("Date Range Becomes Key Condition", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.KeyConditionExpression == "owner_id = :owner AND transaction_at BETWEEN :start AND :end"
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{}}, nil).Once()

		_, total, err := store.ListTransactions(context.Background(), storage.TransactionFilter{
			OwnerID:   "user1",
			StartDate: day(1),
			EndDate:   day(31),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		mockClient.AssertExpectations(t)
	})

	t.Run("Follows Pagination Key", func(t *testing.T) {
		store, mockClient := newStore()

		items := fixtureItems(t)
		lastKey := map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: "tx1"},
		}
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.ExclusiveStartKey == nil
		})).Return(&dynamodb.QueryOutput{Items: items[:1], LastEvaluatedKey: lastKey}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.ExclusiveStartKey != nil
		})).Return(&dynamodb.QueryOutput{Items: items[1:]}, nil).Once()

		_, total, err := store.ListTransactions(context.Background(), storage.TransactionFilter{
			OwnerID: "user1",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		mockClient.AssertExpectations(t)
	})
}

func TestSortTransactions(t *testing.T) {
	txs := func() []models.Transaction {
		return []models.Transaction{
			{Id: "a", Amount: 200, TransactionAt: day(2)},
			{Id: "b", Amount: 100, TransactionAt: day(3)},
			{Id: "c", Amount: 300, TransactionAt: day(1)},
		}
	}

	t.Run("Defaults To Transaction Date", func(t *testing.T) {
		list := txs()
		sortTransactions(list, "", true)
		assert.Equal(t, "b", list[0].Id)
		assert.Equal(t, "c", list[2].Id)
	})

	t.Run("By Amount Ascending", func(t *testing.T) {
		list := txs()
		sortTransactions(list, "amount", false)
		assert.Equal(t, "b", list[0].Id)
		assert.Equal(t, "c", list[2].Id)
	})
}
