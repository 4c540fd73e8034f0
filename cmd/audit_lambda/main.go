package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/anikets/paisaledger/pkg/money"
	"github.com/anikets/paisaledger/pkg/storage"
	dydbstore "github.com/anikets/paisaledger/pkg/storage/dynamodb"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	categoriesTable := os.Getenv("DYNAMODB_CATEGORIES_TABLE_NAME")

	store = dydbstore.New(dbClient, transactionsTable, accountsTable, categoriesTable)
}

// HandleRequest is triggered by an EventBridge Schedule. For every account it
// checks balance == opening_balance + sum of signed transaction deltas and
// reports any drift.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting balance audit...")

	accounts, err := store.ListAllAccounts(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list accounts: %v", err)
		return err
	}

	drifted := 0
	for i := range accounts {
		account := &accounts[i]

		sum, err := store.SumTransactionDeltas(ctx, account.Id)
		if err != nil {
			log.Printf("ERROR: failed to sum deltas for account %s: %v", account.Id, err)
			continue
		}

		expected := account.OpeningBalance + sum
		if account.Balance != expected {
			drifted++
			log.Printf("DRIFT: account %s balance=%s expected=%s (opening=%s deltas=%s)",
				account.Id,
				money.String(account.Balance),
				money.String(expected),
				money.String(account.OpeningBalance),
				money.String(sum))
		}
	}

	log.Printf("Balance audit finished: %d accounts checked, %d drifted", len(accounts), drifted)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
