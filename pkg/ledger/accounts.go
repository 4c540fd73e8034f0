package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anikets/paisaledger/pkg/models"
)

const (
	defaultAccountColor = "#6366f1"
	defaultAccountIcon  = "wallet"
)

// AccountDraft is the input for creating an account. Balance is the opening
// balance in paise; after creation the balance only moves through the
// reconciler.
type AccountDraft struct {
	Name          string
	Type          models.AccountType
	Balance       int64
	Institution   string
	AccountNumber string
	Last4Digits   string
	Color         string
	Icon          string
}

// AccountPatch carries the mutable fields of an account update. The balance
// is deliberately absent.
type AccountPatch struct {
	Name          *string
	Type          *models.AccountType
	Institution   *string
	AccountNumber *string
	Last4Digits   *string
	Color         *string
	Icon          *string
	IsActive      *bool
}

// CreateAccount persists a new account for the owner.
func (s *Service) CreateAccount(ctx context.Context, owner Owner, draft AccountDraft) (*models.Account, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", ErrInvalidArgument)
	}
	if !draft.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, draft.Type)
	}
	if draft.Balance < 0 {
		return nil, fmt.Errorf("%w: opening balance must not be negative", ErrInvalidArgument)
	}

	now := time.Now().UTC()
	account := &models.Account{
		Id:             uuid.NewString(),
		OwnerId:        owner.String(),
		Name:           draft.Name,
		Type:           draft.Type,
		Balance:        draft.Balance,
		OpeningBalance: draft.Balance,
		Institution:    draft.Institution,
		AccountNumber:  draft.AccountNumber,
		Last4Digits:    draft.Last4Digits,
		Color:          draft.Color,
		Icon:           draft.Icon,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if account.Color == "" {
		account.Color = defaultAccountColor
	}
	if account.Icon == "" {
		account.Icon = defaultAccountIcon
	}

	return s.accounts.CreateAccount(ctx, account)
}

// GetAccount retrieves one owned account.
func (s *Service) GetAccount(ctx context.Context, owner Owner, id string) (*models.Account, error) {
	return s.accounts.GetAccount(ctx, id, owner.String())
}

// ListAccounts retrieves the owner's active accounts.
func (s *Service) ListAccounts(ctx context.Context, owner Owner) ([]models.Account, error) {
	return s.accounts.ListAccounts(ctx, owner.String())
}

// UpdateAccount applies a patch to an owned account.
func (s *Service) UpdateAccount(ctx context.Context, owner Owner, id string, patch AccountPatch) (*models.Account, error) {
	account, err := s.accounts.GetAccount(ctx, id, owner.String())
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("%w: account name is required", ErrInvalidArgument)
		}
		account.Name = *patch.Name
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, *patch.Type)
		}
		account.Type = *patch.Type
	}
	if patch.Institution != nil {
		account.Institution = *patch.Institution
	}
	if patch.AccountNumber != nil {
		account.AccountNumber = *patch.AccountNumber
	}
	if patch.Last4Digits != nil {
		account.Last4Digits = *patch.Last4Digits
	}
	if patch.Color != nil {
		account.Color = *patch.Color
	}
	if patch.Icon != nil {
		account.Icon = *patch.Icon
	}
	if patch.IsActive != nil {
		account.IsActive = *patch.IsActive
	}
	account.UpdatedAt = time.Now().UTC()

	return s.accounts.UpdateAccount(ctx, account)
}

// DeleteAccount removes an account. An account that still has transactions
// bound to it is deactivated instead, so historical records keep a valid
// reference.
func (s *Service) DeleteAccount(ctx context.Context, owner Owner, id string) error {
	account, err := s.accounts.GetAccount(ctx, id, owner.String())
	if err != nil {
		return err
	}

	count, err := s.transactions.CountTransactionsByAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		account.IsActive = false
		account.UpdatedAt = time.Now().UTC()
		_, err := s.accounts.UpdateAccount(ctx, account)
		return err
	}

	return s.accounts.DeleteAccount(ctx, id, owner.String())
}

// GetTotalBalance sums the owner's active account balances in paise.
func (s *Service) GetTotalBalance(ctx context.Context, owner Owner) (int64, error) {
	return s.accounts.TotalBalance(ctx, owner.String())
}
