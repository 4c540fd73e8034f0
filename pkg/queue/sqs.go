package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSEnqueuer implements the Enqueuer interface using AWS SQS.
type SQSEnqueuer struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSEnqueuer creates a new SQSEnqueuer.
func NewSQSEnqueuer(client *sqs.Client, queueURL string) *SQSEnqueuer {
	return &SQSEnqueuer{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Enqueuer = (*SQSEnqueuer)(nil)

// EnqueueDrafts sends the envelope to the ingestion queue.
func (e *SQSEnqueuer) EnqueueDrafts(ctx context.Context, envelope IngestEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal ingest envelope: %w", err)
	}

	_, err = e.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(e.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
