package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// GetAccount retrieves an account by id, verifying ownership.
func (s *Store) GetAccount(ctx context.Context, id, ownerID string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrNotFound
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}
	if account.OwnerId != ownerID {
		return nil, storage.ErrNotFound
	}

	return &account, nil
}

// FindAccountByLast4 resolves an active account by its masked suffix.
func (s *Store) FindAccountByLast4(ctx context.Context, ownerID, last4 string) (*models.Account, error) {
	accounts, err := s.queryAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].IsActive && accounts[i].Last4Digits == last4 {
			return &accounts[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

// CreateAccount creates a new account record, rejecting duplicate names per owner.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	existing, err := s.queryAccountsByOwner(ctx, account.OwnerId)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Name == account.Name {
			return nil, fmt.Errorf("account name %q: %w", account.Name, storage.ErrConflict)
		}
	}

	accountAV, err := attributevalue.MarshalMap(account)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                accountAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account %s: %w", account.Id, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	return account, nil
}

// UpdateAccount writes the mutable account fields, verifying ownership. The
// balance attribute is deliberately left out of the update expression: only
// AdjustBalance may move it, and a whole-item replace here would race a
// concurrent adjustment.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	updatedAtAV, err := attributevalue.Marshal(account.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: account.Id},
		},
		UpdateExpression: aws.String("SET #name = :name, #type = :type, institution = :institution, " +
			"account_number = :accountNumber, last_4_digits = :last4, color = :color, " +
			"icon = :icon, is_active = :isActive, updated_at = :updatedAt"),
		ConditionExpression: aws.String("attribute_exists(id) AND owner_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":          &types.AttributeValueMemberS{Value: account.Name},
			":type":          &types.AttributeValueMemberS{Value: string(account.Type)},
			":institution":   &types.AttributeValueMemberS{Value: account.Institution},
			":accountNumber": &types.AttributeValueMemberS{Value: account.AccountNumber},
			":last4":         &types.AttributeValueMemberS{Value: account.Last4Digits},
			":color":         &types.AttributeValueMemberS{Value: account.Color},
			":icon":          &types.AttributeValueMemberS{Value: account.Icon},
			":isActive":      &types.AttributeValueMemberBOOL{Value: account.IsActive},
			":updatedAt":     updatedAtAV,
			":owner":         &types.AttributeValueMemberS{Value: account.OwnerId},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update account in DynamoDB: %w", err)
	}

	var updated models.Account
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated account: %w", err)
	}

	return &updated, nil
}

// DeleteAccount deletes an account record, verifying ownership.
func (s *Store) DeleteAccount(ctx context.Context, id, ownerID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return fmt.Errorf("failed to marshal account ID for deletion: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.AccountsTableName),
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
		return fmt.Errorf("failed to delete account from DynamoDB: %w", err)
	}

	return nil
}

// ListAccounts retrieves the owner's active accounts ordered by name.
func (s *Store) ListAccounts(ctx context.Context, ownerID string) ([]models.Account, error) {
	accounts, err := s.queryAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	active := accounts[:0]
	for _, a := range accounts {
		if a.IsActive {
			active = append(active, a)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })

	return active, nil
}

// TotalBalance sums the balances of the owner's active accounts.
func (s *Store) TotalBalance(ctx context.Context, ownerID string) (int64, error) {
	accounts, err := s.queryAccountsByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, a := range accounts {
		if a.IsActive {
			total += a.Balance
		}
	}
	return total, nil
}

// queryAccountsByOwner pages through the owner GSI.
func (s *Store) queryAccountsByOwner(ctx context.Context, ownerID string) ([]models.Account, error) {
	var accounts []models.Account
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.AccountsTableName),
			IndexName:              aws.String(ownerIndex),
			KeyConditionExpression: aws.String("owner_id = :owner"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: ownerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query accounts by owner: %w", err)
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
