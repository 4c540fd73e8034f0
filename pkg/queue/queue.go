package queue

import (
	"context"

	"github.com/anikets/paisaledger/pkg/ledger"
)

// IngestEnvelope is the message carried on the draft ingestion queue. The
// ingest worker feeds the drafts through the sync pipeline under the owner's
// identity.
type IngestEnvelope struct {
	OwnerId string                    `json:"owner_id"`
	Drafts  []ledger.TransactionDraft `json:"drafts"`
}

// Enqueuer defines the interface for handing transaction drafts to the
// asynchronous ingestion pipeline.
type Enqueuer interface {
	// EnqueueDrafts submits an envelope of drafts for ingestion.
	EnqueueDrafts(ctx context.Context, envelope IngestEnvelope) error
}
