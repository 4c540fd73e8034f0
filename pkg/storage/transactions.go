package storage

import (
	"context"
	"time"

	"github.com/anikets/paisaledger/pkg/models"
)

// TransactionFilter narrows a list query. Zero values mean "no constraint".
type TransactionFilter struct {
	OwnerID    string
	Type       models.TransactionType
	CategoryID string
	AccountID  string
	StartDate  time.Time
	EndDate    time.Time
	// Search is matched as a case-insensitive substring across description,
	// merchant and notes. Implementations must escape pattern metacharacters.
	Search    string
	SortBy    string // transaction_at | amount | created_at | merchant
	SortDesc  bool
	Page      int
	Limit     int
}

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by id for the owner, with
	// denormalized category/account display fields populated.
	GetTransaction(ctx context.Context, id, ownerID string) (*models.Transaction, error)

	// ListTransactions returns one page of matching transactions plus the
	// total match count computed with the same predicate.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int64, error)

	// FindTransactionBySMSHash retrieves the owner's transaction carrying the
	// given dedup hash, or ErrNotFound.
	FindTransactionBySMSHash(ctx context.Context, ownerID, hash string) (*models.Transaction, error)

	// CountTransactionsByAccount counts transactions bound to an account.
	CountTransactionsByAccount(ctx context.Context, accountID string) (int64, error)

	// CountTransactionsByCategory counts transactions bound to a category.
	CountTransactionsByCategory(ctx context.Context, categoryID string) (int64, error)

	// ListRecurringTransactions retrieves the owner-agnostic set of
	// transactions flagged recurring with transaction_at >= since.
	ListRecurringTransactions(ctx context.Context, since time.Time) ([]models.Transaction, error)
}

// TransactionWriter defines the interface for mutating transaction records.
// Balance bookkeeping is NOT done here; the ledger service drives the account
// store's AdjustBalance around these calls.
type TransactionWriter interface {
	// CreateTransaction persists a new transaction record. Returns
	// ErrConflict when the sms_hash is already present for the owner.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// UpdateTransaction replaces an existing record keyed by id+owner.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// DeleteTransaction removes a transaction record permanently.
	DeleteTransaction(ctx context.Context, id, ownerID string) error
}

// TransactionAggregator defines the analytics queries over the ledger.
type TransactionAggregator interface {
	// MonthlySummary sums amounts by type within the calendar month.
	MonthlySummary(ctx context.Context, ownerID string, year, month int) (*models.MonthlySummary, error)

	// DailyTrend groups income/expense totals by calendar date over [start, end].
	DailyTrend(ctx context.Context, ownerID string, start, end time.Time) ([]models.DailyTrendPoint, error)

	// TopMerchants returns up to limit merchants by total expense, descending.
	TopMerchants(ctx context.Context, ownerID string, start, end time.Time, limit int) ([]models.MerchantTotal, error)

	// SpendingByWeekday groups expense totals by day of week over [start, end].
	SpendingByWeekday(ctx context.Context, ownerID string, start, end time.Time) ([]models.WeekdayTotal, error)
}

// TransactionStore combines the reader, writer and aggregator interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionWriter
	TransactionAggregator
}
