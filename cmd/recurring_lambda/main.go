package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"

	"github.com/anikets/paisaledger/pkg/ledger"
	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/queue"
	"github.com/anikets/paisaledger/pkg/storage"
	dydbstore "github.com/anikets/paisaledger/pkg/storage/dynamodb"
)

var store storage.TransactionReader
var enqueuer queue.Enqueuer

// Recurring transactions from the trailing window are re-issued one cycle
// later. The window is slightly longer than a month so a late run never
// misses entries.
const recurringWindow = 35 * 24 * time.Hour

// setup wires the AWS clients once per cold start.
func setup() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	enqueuer = queue.NewSQSEnqueuer(sqsClient, sqsQueueURL)

	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	categoriesTable := os.Getenv("DYNAMODB_CATEGORIES_TABLE_NAME")

	store = dydbstore.New(dbClient, transactionsTable, accountsTable, categoriesTable)
}

// nextCycleDraft builds the next occurrence of a recurring transaction. The
// dedup hash is derived from the source transaction and the target month, so
// repeated runs of the schedule stay idempotent.
func nextCycleDraft(tx *models.Transaction) ledger.TransactionDraft {
	nextAt := tx.TransactionAt.AddDate(0, 1, 0)
	return ledger.TransactionDraft{
		Type:          tx.Type,
		Amount:        tx.Amount,
		Description:   tx.Description,
		Merchant:      tx.Merchant,
		CategoryId:    tx.CategoryId,
		AccountId:     tx.AccountId,
		Source:        models.SourceRecurring,
		TransactionAt: nextAt,
		Tags:          tx.Tags,
		Notes:         tx.Notes,
		IsRecurring:   true,
		SMSHash:       fmt.Sprintf("recurring:%s:%s", tx.Id, nextAt.Format("2006-01")),
	}
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting recurring transaction rollover...")

	since := time.Now().UTC().Add(-recurringWindow)
	recurring, err := store.ListRecurringTransactions(ctx, since)
	if err != nil {
		log.Printf("ERROR: failed to list recurring transactions: %v", err)
		return err
	}

	if len(recurring) == 0 {
		log.Println("No recurring transactions found.")
		return nil
	}

	// One envelope per owner; the ingest pipeline dedups on the hash.
	byOwner := make(map[string][]ledger.TransactionDraft)
	for i := range recurring {
		tx := &recurring[i]
		byOwner[tx.OwnerId] = append(byOwner[tx.OwnerId], nextCycleDraft(tx))
	}

	log.Printf("Enqueuing %d recurring drafts for %d owners...", len(recurring), len(byOwner))

	for ownerID, drafts := range byOwner {
		envelope := queue.IngestEnvelope{OwnerId: ownerID, Drafts: drafts}
		if err := enqueuer.EnqueueDrafts(ctx, envelope); err != nil {
			log.Printf("ERROR: failed to enqueue drafts for owner %s: %v", ownerID, err)
			// Continue to the next owner, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Enqueued %d drafts for owner %s", len(drafts), ownerID)
	}

	log.Println("Recurring transaction rollover finished.")
	return nil
}

func main() {
	setup()
	lambda.Start(HandleRequest)
}
