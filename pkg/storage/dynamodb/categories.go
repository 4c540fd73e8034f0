package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// GetCategory retrieves a category by id, verifying ownership.
func (s *Store) GetCategory(ctx context.Context, id, ownerID string) (*models.Category, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.CategoriesTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get category from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, storage.ErrNotFound
	}

	var category models.Category
	if err := attributevalue.UnmarshalMap(result.Item, &category); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category: %w", err)
	}
	if category.OwnerId != ownerID {
		return nil, storage.ErrNotFound
	}

	return &category, nil
}

// FindCategoryByName resolves a category by case-insensitive exact name match.
func (s *Store) FindCategoryByName(ctx context.Context, ownerID, name string) (*models.Category, error) {
	categories, err := s.queryCategoriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

// ListCategories retrieves the owner's categories ordered by type then name.
func (s *Store) ListCategories(ctx context.Context, ownerID string, categoryType models.CategoryType) ([]models.Category, error) {
	categories, err := s.queryCategoriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if categoryType != "" {
		filtered := categories[:0]
		for _, c := range categories {
			if c.Type == categoryType {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Type != categories[j].Type {
			return categories[i].Type < categories[j].Type
		}
		return categories[i].Name < categories[j].Name
	})

	return categories, nil
}

// CreateCategory creates a new category record, rejecting duplicate name+type per owner.
func (s *Store) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	existing, err := s.queryCategoriesByOwner(ctx, category.OwnerId)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Type == category.Type && strings.EqualFold(existing[i].Name, category.Name) {
			return nil, fmt.Errorf("category %q (%s): %w", category.Name, category.Type, storage.ErrConflict)
		}
	}

	categoryAV, err := attributevalue.MarshalMap(category)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.CategoriesTableName),
		Item:                categoryAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("category %s: %w", category.Id, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create category in DynamoDB: %w", err)
	}

	return category, nil
}

// UpdateCategory replaces an existing category record, verifying ownership.
func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	categoryAV, err := attributevalue.MarshalMap(category)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.CategoriesTableName),
		Item:                categoryAV,
		ConditionExpression: aws.String("attribute_exists(id) AND owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: category.OwnerId},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update category in DynamoDB: %w", err)
	}

	return category, nil
}

// DeleteCategory deletes a category record, verifying ownership.
func (s *Store) DeleteCategory(ctx context.Context, id, ownerID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return fmt.Errorf("failed to marshal category ID for deletion: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.CategoriesTableName),
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
		return fmt.Errorf("failed to delete category from DynamoDB: %w", err)
	}

	return nil
}

// SeedDefaultCategories inserts the default set for an owner with no categories yet.
func (s *Store) SeedDefaultCategories(ctx context.Context, ownerID string, categories []models.Category) error {
	existing, err := s.queryCategoriesByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	// BatchWriteItem accepts at most 25 puts per call.
	const batchSize = 25
	for start := 0; start < len(categories); start += batchSize {
		end := start + batchSize
		if end > len(categories) {
			end = len(categories)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, c := range categories[start:end] {
			item, err := attributevalue.MarshalMap(c)
			if err != nil {
				return fmt.Errorf("failed to marshal default category: %w", err)
			}
			writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
		}

		_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.CategoriesTableName: writes,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	return nil
}

// CategoryStats folds expense totals per category over the date range.
func (s *Store) CategoryStats(ctx context.Context, ownerID string, start, end time.Time) ([]models.CategoryStat, error) {
	transactions, err := s.queryTransactionsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}
	categories, err := s.queryCategoriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.Id] = c
	}

	totals := make(map[string]*models.CategoryStat)
	for _, tx := range transactions {
		if tx.Type != models.Expense || tx.CategoryId == "" {
			continue
		}
		stat, ok := totals[tx.CategoryId]
		if !ok {
			c := byID[tx.CategoryId]
			stat = &models.CategoryStat{CategoryId: tx.CategoryId, Name: c.Name, Icon: c.Icon, Color: c.Color}
			totals[tx.CategoryId] = stat
		}
		stat.Total += tx.Amount
		stat.Count++
	}

	stats := make([]models.CategoryStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })

	return stats, nil
}

// queryCategoriesByOwner pages through the owner GSI.
func (s *Store) queryCategoriesByOwner(ctx context.Context, ownerID string) ([]models.Category, error) {
	var categories []models.Category
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.CategoriesTableName),
			IndexName:              aws.String(ownerIndex),
			KeyConditionExpression: aws.String("owner_id = :owner"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner": &types.AttributeValueMemberS{Value: ownerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query categories by owner: %w", err)
		}

		var page []models.Category
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
		categories = append(categories, page...)

		if result.LastEvaluatedKey == nil {
			return categories, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
