package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/storage"
)

// DeleteTransaction removes a transaction record permanently (hard delete,
// no tombstone), verifying ownership through the condition expression.
func (s *Store) DeleteTransaction(ctx context.Context, id, ownerID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return fmt.Errorf("failed to marshal transaction ID for deletion: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(id) AND owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to delete transaction from DynamoDB: %w", err)
	}

	return nil
}
