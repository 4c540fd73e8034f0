// Package api holds the wire types of the HTTP surface. Amounts cross the
// wire as decimal rupees; the domain layer works in paise. Validation rules
// live on the request types as validator tags.
package api

import "time"

// NewTransaction is the create-transaction request body.
type NewTransaction struct {
	Type          string     `json:"type" validate:"required,oneof=income expense transfer"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Description   string     `json:"description,omitempty" validate:"max=500"`
	Merchant      string     `json:"merchant,omitempty" validate:"max=200"`
	CategoryId    string     `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	CategoryName  string     `json:"categoryName,omitempty" validate:"max=100"`
	AccountId     string     `json:"accountId,omitempty" validate:"omitempty,uuid"`
	AccountLast4  string     `json:"accountLast4,omitempty" validate:"omitempty,len=4,numeric"`
	ReferenceId   string     `json:"referenceId,omitempty" validate:"max=200"`
	Source        string     `json:"source,omitempty" validate:"omitempty,oneof=manual sms api recurring notification upi"`
	TransactionAt *time.Time `json:"transactionAt,omitempty"`
	Location      string     `json:"location,omitempty" validate:"max=200"`
	Tags          []string   `json:"tags,omitempty" validate:"max=20,dive,max=50"`
	Notes         string     `json:"notes,omitempty" validate:"max=1000"`
	IsRecurring   bool       `json:"isRecurring,omitempty"`
	SMSHash       string     `json:"smsHash,omitempty" validate:"max=128"`
}

// UpdateTransaction is the patch request body. Nil fields are left unchanged.
type UpdateTransaction struct {
	Type          *string    `json:"type,omitempty" validate:"omitempty,oneof=income expense transfer"`
	Amount        *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Description   *string    `json:"description,omitempty"`
	Merchant      *string    `json:"merchant,omitempty"`
	CategoryId    *string    `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	CategoryName  *string    `json:"categoryName,omitempty"`
	AccountId     *string    `json:"accountId,omitempty" validate:"omitempty,uuid"`
	ReferenceId   *string    `json:"referenceId,omitempty"`
	TransactionAt *time.Time `json:"transactionAt,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Tags          *[]string  `json:"tags,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	IsRecurring   *bool      `json:"isRecurring,omitempty"`
}

// Transaction is the wire representation of a resolved transaction.
type Transaction struct {
	Id            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description,omitempty"`
	Merchant      string    `json:"merchant,omitempty"`
	CategoryId    string    `json:"categoryId,omitempty"`
	CategoryName  string    `json:"categoryName,omitempty"`
	CategoryIcon  string    `json:"categoryIcon,omitempty"`
	CategoryColor string    `json:"categoryColor,omitempty"`
	AccountId     string    `json:"accountId,omitempty"`
	AccountName   string    `json:"accountName,omitempty"`
	ReferenceId   string    `json:"referenceId,omitempty"`
	Source        string    `json:"source"`
	TransactionAt time.Time `json:"transactionAt"`
	Location      string    `json:"location,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IsRecurring   bool      `json:"isRecurring"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TransactionPage is the listing response envelope.
type TransactionPage struct {
	Items      []Transaction `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// SyncRequest is the batch-ingestion request body.
type SyncRequest struct {
	Transactions []NewTransaction `json:"transactions" validate:"required,min=1,max=100,dive"`
}

// SyncError reports one failed draft in a sync batch.
type SyncError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// SyncResult is the batch-ingestion response.
type SyncResult struct {
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	Errors  []SyncError `json:"errors"`
}

// MonthlySummary is the calendar-month aggregation response.
type MonthlySummary struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpense     float64 `json:"totalExpense"`
	NetSavings       float64 `json:"netSavings"`
	TransactionCount int64   `json:"transactionCount"`
}

// DailyTrendPoint is one day of the analytics trend.
type DailyTrendPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MerchantTotal is one merchant's expense aggregation.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// WeekdayTotal is one weekday's expense aggregation (Sunday = 0).
type WeekdayTotal struct {
	DayOfWeek int     `json:"dayOfWeek"`
	Total     float64 `json:"total"`
}

// Analytics is the range-analytics response.
type Analytics struct {
	DailyTrend   []DailyTrendPoint `json:"dailyTrend"`
	TopMerchants []MerchantTotal   `json:"topMerchants"`
	ByDayOfWeek  []WeekdayTotal    `json:"byDayOfWeek"`
}

// NewAccount is the create-account request body. Balance is the opening
// balance in rupees.
type NewAccount struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Type          string  `json:"type" validate:"required,oneof=bank wallet cash credit_card"`
	Balance       float64 `json:"balance,omitempty" validate:"gte=0"`
	Institution   string  `json:"institution,omitempty" validate:"max=100"`
	AccountNumber string  `json:"accountNumber,omitempty" validate:"max=50"`
	Last4Digits   string  `json:"last4Digits,omitempty" validate:"omitempty,len=4,numeric"`
	Color         string  `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon          string  `json:"icon,omitempty" validate:"max=50"`
}

// UpdateAccount is the account patch request body.
type UpdateAccount struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type          *string `json:"type,omitempty" validate:"omitempty,oneof=bank wallet cash credit_card"`
	Institution   *string `json:"institution,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	Last4Digits   *string `json:"last4Digits,omitempty" validate:"omitempty,len=4,numeric"`
	Color         *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon          *string `json:"icon,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// Account is the wire representation of an account.
type Account struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Balance       float64   `json:"balance"`
	Institution   string    `json:"institution,omitempty"`
	AccountNumber string    `json:"accountNumber,omitempty"`
	Last4Digits   string    `json:"last4Digits,omitempty"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TotalBalance is the aggregate balance response.
type TotalBalance struct {
	TotalBalance float64 `json:"totalBalance"`
}

// NewCategory is the create-category request body.
type NewCategory struct {
	Name     string `json:"name" validate:"required,max=100"`
	Type     string `json:"type" validate:"required,oneof=income expense"`
	Icon     string `json:"icon,omitempty" validate:"max=50"`
	Color    string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	ParentId string `json:"parentId,omitempty" validate:"omitempty,uuid"`
}

// UpdateCategory is the category patch request body.
type UpdateCategory struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon  *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// Category is the wire representation of a category.
type Category struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	ParentId  string    `json:"parentId,omitempty"`
	IsSystem  bool      `json:"isSystem"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryStat is one category's expense aggregation.
type CategoryStat struct {
	CategoryId string  `json:"categoryId"`
	Name       string  `json:"categoryName"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
	Count      int64   `json:"count"`
}

// Error is the uniform error response body.
type Error struct {
	Error string `json:"error"`
}
