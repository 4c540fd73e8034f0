package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// FindTransactionBySMSHash retrieves the owner's transaction carrying the
// given dedup hash. The owner filter runs after the key-condition read, so a
// page can come back empty while matches remain; keep paging until the key
// is exhausted.
func (s *Store) FindTransactionBySMSHash(ctx context.Context, ownerID, hash string) (*models.Transaction, error) {
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.TransactionsTableName),
			IndexName:              aws.String(smsHashIndex),
			KeyConditionExpression: aws.String("sms_hash = :hash"),
			FilterExpression:       aws.String("owner_id = :owner"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":hash":  &types.AttributeValueMemberS{Value: hash},
				":owner": &types.AttributeValueMemberS{Value: ownerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query transactions by sms_hash: %w", err)
		}

		if len(result.Items) > 0 {
			var tx models.Transaction
			if err := attributevalue.UnmarshalMap(result.Items[0], &tx); err != nil {
				return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
			}
			return &tx, nil
		}

		if result.LastEvaluatedKey == nil {
			return nil, storage.ErrNotFound
		}
		startKey = result.LastEvaluatedKey
	}
}

// CountTransactionsByAccount counts transactions bound to an account.
func (s *Store) CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error) {
	return s.countByIndex(ctx, accountIndex, "account_id", accountID)
}

// CountTransactionsByCategory counts transactions bound to a category.
func (s *Store) CountTransactionsByCategory(ctx context.Context, categoryID string) (int64, error) {
	return s.countByIndex(ctx, categoryIndex, "category_id", categoryID)
}

func (s *Store) countByIndex(ctx context.Context, index, attribute, value string) (int64, error) {
	var count int64
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.TransactionsTableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String(fmt.Sprintf("%s = :value", attribute)),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":value": &types.AttributeValueMemberS{Value: value},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to count transactions by %s: %w", attribute, err)
		}
		count += int64(result.Count)

		if result.LastEvaluatedKey == nil {
			return count, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// ListRecurringTransactions scans for recurring-flagged transactions with
// transaction_at at or after the cutoff. A scan is acceptable here: the
// caller is a scheduled job, not a request path.
func (s *Store) ListRecurringTransactions(ctx context.Context, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(s.TransactionsTableName),
			FilterExpression: aws.String("is_recurring = :recurring AND transaction_at >= :since"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":recurring": &types.AttributeValueMemberBOOL{Value: true},
				":since":     &types.AttributeValueMemberS{Value: since.Format(time.RFC3339Nano)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring transactions: %w", err)
		}

		var page []models.Transaction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recurring transactions: %w", err)
		}
		transactions = append(transactions, page...)

		if result.LastEvaluatedKey == nil {
			return transactions, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
