package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/anikets/paisaledger/pkg/ledger"
	"github.com/anikets/paisaledger/pkg/queue"
	dydbstore "github.com/anikets/paisaledger/pkg/storage/dynamodb"
)

var service *ledger.Service

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	categoriesTable := os.Getenv("DYNAMODB_CATEGORIES_TABLE_NAME")

	if transactionsTable == "" || accountsTable == "" || categoriesTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store := dydbstore.New(dbClient, transactionsTable, accountsTable, categoriesTable)
	service = ledger.NewService(store, store, store)
}

// HandleRequest ingests queued draft envelopes through the sync pipeline.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var envelope queue.IngestEnvelope
		if err := json.Unmarshal([]byte(message.Body), &envelope); err != nil {
			log.Printf("ERROR: failed to unmarshal envelope from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message.
			return err
		}
		if envelope.OwnerId == "" {
			log.Printf("ERROR: message %s carries no owner id, dropping", message.MessageId)
			continue
		}

		result, err := service.SyncTransactions(ctx, ledger.Owner(envelope.OwnerId), envelope.Drafts)
		if err != nil {
			log.Printf("ERROR: failed to sync drafts for owner %s: %v", envelope.OwnerId, err)
			return err
		}

		log.Printf("Synced drafts for owner %s: created=%d skipped=%d errors=%d",
			envelope.OwnerId, result.Created, result.Skipped, len(result.Errors))
		for _, syncErr := range result.Errors {
			log.Printf("ERROR: draft %d for owner %s: %s", syncErr.Index, envelope.OwnerId, syncErr.Message)
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
