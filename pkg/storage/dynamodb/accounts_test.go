package dynamodb

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
	"github.com/anikets/paisaledger/pkg/storage/dynamodb/mocks"
)

func TestUpdateAccount(t *testing.T) {
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

	account := func() *models.Account {
		return &models.Account{
			Id:        "acc1",
			OwnerId:   "user1",
			Name:      "HDFC Savings",
			Type:      models.Bank,
			Balance:   100000,
			IsActive:  false,
			Color:     "#6366f1",
			Icon:      "wallet",
			UpdatedAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		}
	}

	t.Run("Leaves Balance To The Reconciler", func(t *testing.T) {
		store, mockClient := newStore()

		// A whole-item replace would race a concurrent AdjustBalance and
		// write back a stale balance; the update expression must not touch
		// the balance attribute at all.
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			if *input.TableName != "accounts" {
				return false
			}
			if strings.Contains(*input.UpdateExpression, "balance") {
				return false
			}
			if *input.ConditionExpression != "attribute_exists(id) AND owner_id = :owner" {
				return false
			}
			active, ok := input.ExpressionAttributeValues[":isActive"].(*types.AttributeValueMemberBOOL)
			return ok && !active.Value && input.ReturnValues == types.ReturnValueAllNew
		})).Return(&dynamodb.UpdateItemOutput{
			Attributes: map[string]types.AttributeValue{
				"id":       &types.AttributeValueMemberS{Value: "acc1"},
				"owner_id": &types.AttributeValueMemberS{Value: "user1"},
				"name":     &types.AttributeValueMemberS{Value: "HDFC Savings"},
				// Adjusted concurrently since the caller's read.
				"balance":   &types.AttributeValueMemberN{Value: "85000"},
				"is_active": &types.AttributeValueMemberBOOL{Value: false},
			},
		}, nil).Once()

		updated, err := store.UpdateAccount(context.Background(), account())

		assert.NoError(t, err)
		assert.False(t, updated.IsActive)
		// The stored balance wins over the caller's stale copy.
		assert.Equal(t, int64(85000), updated.Balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Owner Mismatch Is NotFound", func(t *testing.T) {
		store, mockClient := newStore()

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.UpdateAccount(context.Background(), account())

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}
