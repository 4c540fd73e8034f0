package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// GetTransaction retrieves a transaction by id for the owner and populates
// the denormalized category/account display fields.
func (s *Store) GetTransaction(ctx context.Context, id, ownerID string) (*models.Transaction, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TransactionsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrNotFound
	}

	var tx models.Transaction
	if err := attributevalue.UnmarshalMap(result.Item, &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}
	if tx.OwnerId != ownerID {
		return nil, storage.ErrNotFound
	}

	if err := s.resolveDisplayFields(ctx, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

// resolveDisplayFields denormalizes category and account names onto the
// record. Dangling references resolve to empty fields rather than errors.
func (s *Store) resolveDisplayFields(ctx context.Context, tx *models.Transaction) error {
	if tx.CategoryId != "" {
		category, err := s.GetCategory(ctx, tx.CategoryId, tx.OwnerId)
		switch {
		case err == nil:
			tx.CategoryName = category.Name
			tx.CategoryIcon = category.Icon
			tx.CategoryColor = category.Color
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}
	if tx.AccountId != "" {
		account, err := s.GetAccount(ctx, tx.AccountId, tx.OwnerId)
		switch {
		case err == nil:
			tx.AccountName = account.Name
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}
	return nil
}
