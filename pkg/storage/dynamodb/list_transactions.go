package dynamodb

import (
	"context"
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

// ListTransactions queries the owner GSI with the date range as the sort-key
// condition, then applies the remaining filters, ordering and pagination in
// memory. The total is the count of matches before the page slice, mirroring
// the relational backend's independent count query.
func (s *Store) ListTransactions(ctx context.Context, filter storage.TransactionFilter) ([]models.Transaction, int64, error) {
	transactions, err := s.queryTransactionsByOwner(ctx, filter.OwnerID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, 0, err
	}

	matched := transactions[:0]
	for _, tx := range transactions {
		if matchesFilter(tx, filter) {
			matched = append(matched, tx)
		}
	}

	sortTransactions(matched, filter.SortBy, filter.SortDesc)
	total := int64(len(matched))

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.Transaction{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	items := matched[offset:end]

	for i := range items {
		if err := s.resolveDisplayFields(ctx, &items[i]); err != nil {
			return nil, 0, err
		}
	}

	return items, total, nil
}

// matchesFilter applies the non-key filter predicates. Search is a literal
// case-insensitive substring match, so no pattern escaping applies here.
func matchesFilter(tx models.Transaction, filter storage.TransactionFilter) bool {
	if filter.Type != "" && tx.Type != filter.Type {
		return false
	}
	if filter.CategoryID != "" && tx.CategoryId != filter.CategoryID {
		return false
	}
	if filter.AccountID != "" && tx.AccountId != filter.AccountID {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(tx.Description), needle) &&
			!strings.Contains(strings.ToLower(tx.Merchant), needle) &&
			!strings.Contains(strings.ToLower(tx.Notes), needle) {
			return false
		}
	}
	return true
}

func sortTransactions(transactions []models.Transaction, sortBy string, desc bool) {
	less := func(i, j int) bool {
		switch sortBy {
		case "amount":
			return transactions[i].Amount < transactions[j].Amount
		case "created_at":
			return transactions[i].CreatedAt.Before(transactions[j].CreatedAt)
		case "merchant":
			return transactions[i].Merchant < transactions[j].Merchant
		default:
			return transactions[i].TransactionAt.Before(transactions[j].TransactionAt)
		}
	}
	if desc {
		sort.SliceStable(transactions, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(transactions, less)
	}
}

// queryTransactionsByOwner pages through the owner/transaction_at GSI,
// constraining on the range key when dates are supplied.
func (s *Store) queryTransactionsByOwner(ctx context.Context, ownerID string, start, end time.Time) ([]models.Transaction, error) {
	keyCondition := "owner_id = :owner"
	values := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}

	switch {
	case !start.IsZero() && !end.IsZero():
		keyCondition += " AND transaction_at BETWEEN :start AND :end"
		values[":start"] = &types.AttributeValueMemberS{Value: start.Format(time.RFC3339Nano)}
		values[":end"] = &types.AttributeValueMemberS{Value: end.Format(time.RFC3339Nano)}
	case !start.IsZero():
		keyCondition += " AND transaction_at >= :start"
		values[":start"] = &types.AttributeValueMemberS{Value: start.Format(time.RFC3339Nano)}
	case !end.IsZero():
		keyCondition += " AND transaction_at <= :end"
		values[":end"] = &types.AttributeValueMemberS{Value: end.Format(time.RFC3339Nano)}
	}

	var transactions []models.Transaction
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.TransactionsTableName),
			IndexName:                 aws.String(ownerTransactionAtIndex),
			KeyConditionExpression:    aws.String(keyCondition),
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query transactions by owner: %w", err)
		}

		var page []models.Transaction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		transactions = append(transactions, page...)

		if result.LastEvaluatedKey == nil {
			return transactions, nil
		}
		startKey = result.LastEvaluatedKey
	}
}
