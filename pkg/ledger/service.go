// Package ledger implements the transaction service: the single component
// allowed to drive balance reconciliation. It orchestrates reference
// resolution, record persistence and signed balance adjustments over the
// storage interfaces, staying agnostic of the backing engine.
package ledger

import (
	"errors"
	"fmt"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// ErrInvalidArgument marks a request that fails domain validation.
var ErrInvalidArgument = errors.New("invalid argument")

// Service orchestrates ledger operations across the account, category and
// transaction stores.
type Service struct {
	accounts     storage.AccountStore
	categories   storage.CategoryStore
	transactions storage.TransactionStore
}

// NewService creates a ledger service over the given stores.
func NewService(accounts storage.AccountStore, categories storage.CategoryStore, transactions storage.TransactionStore) *Service {
	return &Service{
		accounts:     accounts,
		categories:   categories,
		transactions: transactions,
	}
}

func validateTransactionFields(txType models.TransactionType, amount int64) error {
	if !txType.Valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidArgument, txType)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	return nil
}
