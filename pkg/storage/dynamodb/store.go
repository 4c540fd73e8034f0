package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/anikets/paisaledger/pkg/storage"
)

// DynamoDBAPI abstracts the subset of the DynamoDB client used by the store,
// so it can be mocked in tests.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                DynamoDBAPI
	TransactionsTableName string
	AccountsTableName     string
	CategoriesTableName   string
}

// New creates a new Store.
func New(client DynamoDBAPI, transactionsTable, accountsTable, categoriesTable string) *Store {
	return &Store{
		Client:                client,
		TransactionsTableName: transactionsTable,
		AccountsTableName:     accountsTable,
		CategoriesTableName:   categoriesTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Global secondary index names.
const (
	ownerIndex              = "owner_id-index"
	ownerTransactionAtIndex = "owner_id-transaction_at-index"
	smsHashIndex            = "sms_hash-index"
	accountIndex            = "account_id-index"
	categoryIndex           = "category_id-index"
)
