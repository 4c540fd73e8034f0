package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// CreateTransaction persists a new transaction record. The document backend
// enforces sms_hash uniqueness with a read before the write rather than a
// table constraint, so it is per-owner and slightly looser than the
// relational backend's unique index.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.SMSHash != "" {
		_, err := s.FindTransactionBySMSHash(ctx, tx.OwnerId, tx.SMSHash)
		if err == nil {
			return nil, fmt.Errorf("sms_hash %s: %w", tx.SMSHash, storage.ErrConflict)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	txAV, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                txAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("transaction %s: %w", tx.Id, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create transaction in DynamoDB: %w", err)
	}

	return tx, nil
}
