package storage

import (
	"context"

	"github.com/anikets/paisaledger/pkg/models"
)

// AccountStore defines the interface for managing accounts.
// Every operation is scoped to an owner; an id that exists under a different
// owner behaves exactly like a missing id (ErrNotFound).
type AccountStore interface {
	// GetAccount retrieves an account by id for the given owner.
	GetAccount(ctx context.Context, id, ownerID string) (*models.Account, error)

	// FindAccountByLast4 looks up an active account by its masked suffix.
	// Returns ErrNotFound when no active account matches.
	FindAccountByLast4(ctx context.Context, ownerID, last4 string) (*models.Account, error)

	// CreateAccount persists a new account. Returns ErrConflict when the
	// owner already has an account with the same name.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// UpdateAccount replaces the mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// DeleteAccount removes an account record permanently.
	DeleteAccount(ctx context.Context, id, ownerID string) error

	// ListAccounts retrieves the owner's active accounts ordered by name.
	ListAccounts(ctx context.Context, ownerID string) ([]models.Account, error)

	// AdjustBalance atomically adds delta (paise, signed) to the account's
	// balance and bumps updated_at, returning the resulting balance. The
	// read-modify-write must happen at the storage engine so concurrent
	// adjustments to the same account serialize correctly.
	AdjustBalance(ctx context.Context, id, ownerID string, delta int64) (int64, error)

	// TotalBalance sums the balances of the owner's active accounts.
	TotalBalance(ctx context.Context, ownerID string) (int64, error)
}
