package storage

import (
	"context"

	"github.com/anikets/paisaledger/pkg/models"
)

// AuditStore defines the privileged cross-owner interface used by the balance
// audit job. It must only be exposed to that job: at any quiescent point an
// account's stored balance has to equal the sum of signed deltas of the
// transactions bound to it, and this interface exists to check exactly that.
type AuditStore interface {
	// ListAllAccounts retrieves every account regardless of owner.
	ListAllAccounts(ctx context.Context) ([]models.Account, error)

	// SumTransactionDeltas computes the signed sum (income positive, expense
	// and transfer negative) of all transactions bound to the account.
	SumTransactionDeltas(ctx context.Context, accountID string) (int64, error)
}
