package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/storage"
)

// TransactionDraft is the input for creating a transaction. Amount is in
// paise. CategoryName and AccountLast4 are resolution hints used only when
// the corresponding id is absent.
type TransactionDraft struct {
	Type          models.TransactionType   `json:"type"`
	Amount        int64                    `json:"amount"`
	Description   string                   `json:"description,omitempty"`
	Merchant      string                   `json:"merchant,omitempty"`
	CategoryId    string                   `json:"category_id,omitempty"`
	CategoryName  string                   `json:"category_name,omitempty"`
	AccountId     string                   `json:"account_id,omitempty"`
	AccountLast4  string                   `json:"account_last4,omitempty"`
	ReferenceId   string                   `json:"reference_id,omitempty"`
	Source        models.TransactionSource `json:"source,omitempty"`
	TransactionAt time.Time                `json:"transaction_at,omitempty"`
	Location      string                   `json:"location,omitempty"`
	Tags          []string                 `json:"tags,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	IsRecurring   bool                     `json:"is_recurring,omitempty"`
	SMSHash       string                   `json:"sms_hash,omitempty"`
}

// TransactionPatch carries the fields of an update request. Nil means the
// field was not supplied and keeps its stored value.
type TransactionPatch struct {
	Type          *models.TransactionType
	Amount        *int64
	Description   *string
	Merchant      *string
	CategoryId    *string
	CategoryName  *string
	AccountId     *string
	ReferenceId   *string
	TransactionAt *time.Time
	Location      *string
	Tags          *[]string
	Notes         *string
	IsRecurring   *bool
}

// ListQuery narrows and pages a transaction listing.
type ListQuery struct {
	Type       models.TransactionType
	CategoryId string
	AccountId  string
	StartDate  time.Time
	EndDate    time.Time
	Search     string
	SortBy     string
	SortDesc   bool
	Page       int
	Limit      int
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TransactionPage is the listing envelope.
type TransactionPage struct {
	Items      []models.Transaction `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

// SyncError records one failed draft in a sync batch.
type SyncError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// SyncResult summarizes a sync batch.
type SyncResult struct {
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	Errors  []SyncError `json:"errors"`
}

// resolveCategoryId resolves a category-name hint to an owned category id.
// A name that matches nothing leaves the transaction uncategorized; resolution
// never creates categories.
func (s *Service) resolveCategoryId(ctx context.Context, owner Owner, categoryID, name string) (string, error) {
	if categoryID != "" || name == "" {
		return categoryID, nil
	}
	category, err := s.categories.FindCategoryByName(ctx, owner.String(), name)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve category name: %w", err)
	}
	return category.Id, nil
}

// resolveAccountId resolves a last-4-digits hint to an owned active account id.
func (s *Service) resolveAccountId(ctx context.Context, owner Owner, accountID, last4 string) (string, error) {
	if accountID != "" || last4 == "" {
		return accountID, nil
	}
	account, err := s.accounts.FindAccountByLast4(ctx, owner.String(), last4)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve account suffix: %w", err)
	}
	return account.Id, nil
}

// CreateTransaction resolves references, persists the record, then applies
// the signed delta to the bound account. The balance adjustment happens after
// the record commit; if it fails the record stays and the error is returned,
// leaving drift for the balance audit to surface.
func (s *Service) CreateTransaction(ctx context.Context, owner Owner, draft TransactionDraft) (*models.Transaction, error) {
	categoryID, err := s.resolveCategoryId(ctx, owner, draft.CategoryId, draft.CategoryName)
	if err != nil {
		return nil, err
	}
	accountID, err := s.resolveAccountId(ctx, owner, draft.AccountId, draft.AccountLast4)
	if err != nil {
		return nil, err
	}

	if err := validateTransactionFields(draft.Type, draft.Amount); err != nil {
		return nil, err
	}
	source := draft.Source
	if source == "" {
		source = models.SourceManual
	}
	if !source.Valid() {
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidArgument, source)
	}

	now := time.Now().UTC()
	transactionAt := draft.TransactionAt
	if transactionAt.IsZero() {
		transactionAt = now
	}

	tx := &models.Transaction{
		Id:            uuid.NewString(),
		OwnerId:       owner.String(),
		AccountId:     accountID,
		CategoryId:    categoryID,
		Type:          draft.Type,
		Amount:        draft.Amount,
		Description:   draft.Description,
		Merchant:      draft.Merchant,
		ReferenceId:   draft.ReferenceId,
		Source:        source,
		TransactionAt: transactionAt,
		Location:      draft.Location,
		Tags:          draft.Tags,
		Notes:         draft.Notes,
		IsRecurring:   draft.IsRecurring,
		SMSHash:       draft.SMSHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.transactions.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	if accountID != "" {
		delta := models.SignedDelta(draft.Type, draft.Amount)
		if _, err := s.accounts.AdjustBalance(ctx, accountID, owner.String(), delta); err != nil {
			slog.Error("transaction persisted but balance adjustment failed",
				"transaction_id", created.Id, "account_id", accountID, "delta", delta, "error", err)
			return nil, fmt.Errorf("transaction %s recorded but balance not applied: %w", created.Id, err)
		}
	}

	return s.transactions.GetTransaction(ctx, created.Id, owner.String())
}

// UpdateTransaction applies a patch to an owned transaction. When the amount,
// type or bound account changes, the balance effect is corrected with a
// single atomic net-delta adjustment on the unchanged account, or one
// reversal plus one application when the account itself moves.
func (s *Service) UpdateTransaction(ctx context.Context, owner Owner, id string, patch TransactionPatch) (*models.Transaction, error) {
	existing, err := s.transactions.GetTransaction(ctx, id, owner.String())
	if err != nil {
		return nil, err
	}

	updated := *existing
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Amount != nil {
		updated.Amount = *patch.Amount
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Merchant != nil {
		updated.Merchant = *patch.Merchant
	}
	if patch.CategoryId != nil {
		updated.CategoryId = *patch.CategoryId
	} else if patch.CategoryName != nil {
		categoryID, err := s.resolveCategoryId(ctx, owner, "", *patch.CategoryName)
		if err != nil {
			return nil, err
		}
		if categoryID != "" {
			updated.CategoryId = categoryID
		}
	}
	if patch.AccountId != nil {
		updated.AccountId = *patch.AccountId
	}
	if patch.ReferenceId != nil {
		updated.ReferenceId = *patch.ReferenceId
	}
	if patch.TransactionAt != nil {
		updated.TransactionAt = *patch.TransactionAt
	}
	if patch.Location != nil {
		updated.Location = *patch.Location
	}
	if patch.Tags != nil {
		updated.Tags = *patch.Tags
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}
	if patch.IsRecurring != nil {
		updated.IsRecurring = *patch.IsRecurring
	}

	if err := validateTransactionFields(updated.Type, updated.Amount); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now().UTC()

	effectChanged := updated.Amount != existing.Amount ||
		updated.Type != existing.Type ||
		updated.AccountId != existing.AccountId

	if effectChanged && existing.AccountId != "" {
		oldDelta := models.SignedDelta(existing.Type, existing.Amount)
		newDelta := models.SignedDelta(updated.Type, updated.Amount)

		if updated.AccountId == existing.AccountId {
			if net := newDelta - oldDelta; net != 0 {
				if _, err := s.accounts.AdjustBalance(ctx, existing.AccountId, owner.String(), net); err != nil {
					return nil, fmt.Errorf("failed to adjust balance: %w", err)
				}
			}
		} else {
			if _, err := s.accounts.AdjustBalance(ctx, existing.AccountId, owner.String(), -oldDelta); err != nil {
				return nil, fmt.Errorf("failed to reverse balance effect: %w", err)
			}
			if updated.AccountId != "" {
				if _, err := s.accounts.AdjustBalance(ctx, updated.AccountId, owner.String(), newDelta); err != nil {
					return nil, fmt.Errorf("failed to apply balance effect: %w", err)
				}
			}
		}
	}

	if _, err := s.transactions.UpdateTransaction(ctx, &updated); err != nil {
		return nil, err
	}
	return s.transactions.GetTransaction(ctx, id, owner.String())
}

// DeleteTransaction reverses the transaction's balance effect and removes the
// record.
func (s *Service) DeleteTransaction(ctx context.Context, owner Owner, id string) error {
	existing, err := s.transactions.GetTransaction(ctx, id, owner.String())
	if err != nil {
		return err
	}

	if existing.AccountId != "" {
		reversal := models.SignedDelta(models.ReverseType(existing.Type), existing.Amount)
		if _, err := s.accounts.AdjustBalance(ctx, existing.AccountId, owner.String(), reversal); err != nil {
			return fmt.Errorf("failed to reverse balance effect: %w", err)
		}
	}

	return s.transactions.DeleteTransaction(ctx, id, owner.String())
}

// GetTransaction retrieves one resolved transaction.
func (s *Service) GetTransaction(ctx context.Context, owner Owner, id string) (*models.Transaction, error) {
	return s.transactions.GetTransaction(ctx, id, owner.String())
}

// GetTransactions lists transactions under the filter/sort/page envelope.
func (s *Service) GetTransactions(ctx context.Context, owner Owner, query ListQuery) (*TransactionPage, error) {
	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	items, total, err := s.transactions.ListTransactions(ctx, storage.TransactionFilter{
		OwnerID:    owner.String(),
		Type:       query.Type,
		CategoryID: query.CategoryId,
		AccountID:  query.AccountId,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		Search:     query.Search,
		SortBy:     query.SortBy,
		SortDesc:   query.SortDesc,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &TransactionPage{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// SyncTransactions ingests a batch of externally parsed drafts sequentially.
// A draft whose dedup hash already exists for the owner is skipped; failures
// are collected per draft and never abort the batch.
func (s *Service) SyncTransactions(ctx context.Context, owner Owner, drafts []TransactionDraft) (*SyncResult, error) {
	result := &SyncResult{Errors: []SyncError{}}

	for i, draft := range drafts {
		if draft.SMSHash != "" {
			_, err := s.transactions.FindTransactionBySMSHash(ctx, owner.String(), draft.SMSHash)
			if err == nil {
				result.Skipped++
				continue
			}
			if !errors.Is(err, storage.ErrNotFound) {
				result.Errors = append(result.Errors, SyncError{Index: i, Message: err.Error()})
				continue
			}
		}

		if draft.Source == "" {
			draft.Source = models.SourceSMS
		}
		if _, err := s.CreateTransaction(ctx, owner, draft); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				// The hash landed between the dedup check and the write.
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, SyncError{Index: i, Message: err.Error()})
			continue
		}
		result.Created++
	}

	return result, nil
}

// GetMonthlySummary aggregates one calendar month.
func (s *Service) GetMonthlySummary(ctx context.Context, owner Owner, year, month int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidArgument)
	}
	return s.transactions.MonthlySummary(ctx, owner.String(), year, month)
}

const topMerchantsLimit = 10

// GetAnalytics computes the spending aggregations over [start, end].
func (s *Service) GetAnalytics(ctx context.Context, owner Owner, start, end time.Time) (*models.Analytics, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidArgument)
	}

	trend, err := s.transactions.DailyTrend(ctx, owner.String(), start, end)
	if err != nil {
		return nil, err
	}
	merchants, err := s.transactions.TopMerchants(ctx, owner.String(), start, end, topMerchantsLimit)
	if err != nil {
		return nil, err
	}
	weekdays, err := s.transactions.SpendingByWeekday(ctx, owner.String(), start, end)
	if err != nil {
		return nil, err
	}

	return &models.Analytics{
		DailyTrend:   trend,
		TopMerchants: merchants,
		ByDayOfWeek:  weekdays,
	}, nil
}
