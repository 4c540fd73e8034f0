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

func TestCreateTransaction(t *testing.T) {
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

	tx := func() *models.Transaction {
		return &models.Transaction{
			Id:            "tx1",
			OwnerId:       "user1",
			AccountId:     "acc1",
			Type:          models.Expense,
			Amount:        15000,
			Merchant:      "Zomato",
			Source:        models.SourceSMS,
			SMSHash:       "abc123",
			TransactionAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Happy Path", func(t *testing.T) {
		store, mockClient := newStore()
		record := tx()

		// 1. The dedup probe misses on the sms_hash index.
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return *input.IndexName == smsHashIndex
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{}}, nil).Once()

		// 2. The write is guarded against id collisions.
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.TableName == "transactions" &&
				*input.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		created, err := store.CreateTransaction(context.Background(), record)

		assert.NoError(t, err)
		assert.Equal(t, "tx1", created.Id)
		mockClient.AssertExpectations(t)
	})

	t.Run("Existing Hash Is A Conflict", func(t *testing.T) {
		store, mockClient := newStore()
		record := tx()

		existingAV, err := attributevalue.MarshalMap(tx())
		assert.NoError(t, err)

		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{existingAV}}, nil).Once()

		_, err = store.CreateTransaction(context.Background(), record)

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
	})

	t.Run("No Hash Skips Dedup Probe", func(t *testing.T) {
		store, mockClient := newStore()
		record := tx()
		record.SMSHash = ""
		record.Source = models.SourceManual

		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(&dynamodb.PutItemOutput{}, nil).Once()

		_, err := store.CreateTransaction(context.Background(), record)

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
	})

	t.Run("Id Collision Is A Conflict", func(t *testing.T) {
		store, mockClient := newStore()
		record := tx()
		record.SMSHash = ""

		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.CreateTransaction(context.Background(), record)

		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}
