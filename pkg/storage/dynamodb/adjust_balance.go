package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// AdjustBalance atomically adds delta (paise, signed) to the account's stored
// balance. DynamoDB evaluates `balance = balance + :delta` server-side, so
// concurrent adjustments to the same account never lose an update. The
// condition expression doubles as the ownership check: a mismatched owner
// fails the write and surfaces as not-found.
func (s *Store) AdjustBalance(ctx context.Context, id, ownerID string, delta int64) (int64, error) {
	deltaAV, err := attributevalue.Marshal(delta)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal balance delta: %w", err)
	}
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET balance = balance + :delta, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": deltaAV,
			":now":   nowAV,
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("failed to adjust account balance: %w", err)
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Attributes, &account); err != nil {
		return 0, fmt.Errorf("failed to unmarshal adjusted account: %w", err)
	}

	return account.Balance, nil
}
