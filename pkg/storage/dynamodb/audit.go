package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/models"
)

// ListAllAccounts retrieves every account, across owners. Privileged: only
// the balance audit job should reach this.
func (s *Store) ListAllAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.AccountsTableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan accounts table: %w", err)
		}

		var page []models.Account
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal accounts: %w", err)
		}
		accounts = append(accounts, page...)

		if result.LastEvaluatedKey == nil {
			return accounts, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// SumTransactionDeltas computes the signed sum of all transactions bound to
// the account: income positive, expense and transfer negative.
func (s *Store) SumTransactionDeltas(ctx context.Context, accountID string) (int64, error) {
	var sum int64
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.TransactionsTableName),
			IndexName:              aws.String(accountIndex),
			KeyConditionExpression: aws.String("account_id = :account"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":account": &types.AttributeValueMemberS{Value: accountID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to query transactions by account: %w", err)
		}

		var page []models.Transaction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return 0, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		for _, tx := range page {
			sum += models.SignedDelta(tx.Type, tx.Amount)
		}

		if result.LastEvaluatedKey == nil {
			return sum, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
