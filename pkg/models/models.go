package models

import (
	"time"
)

// TransactionType defines the direction of a transaction's effect on a balance.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// TransactionSource identifies how a transaction entered the system.
type TransactionSource string

const (
	SourceManual       TransactionSource = "manual"
	SourceSMS          TransactionSource = "sms"
	SourceAPI          TransactionSource = "api"
	SourceRecurring    TransactionSource = "recurring"
	SourceNotification TransactionSource = "notification"
	SourceUPI          TransactionSource = "upi"
)

// Valid reports whether s is a known transaction source.
func (s TransactionSource) Valid() bool {
	switch s {
	case SourceManual, SourceSMS, SourceAPI, SourceRecurring, SourceNotification, SourceUPI:
		return true
	}
	return false
}

// AccountType defines the kind of financial account.
type AccountType string

const (
	Bank       AccountType = "bank"
	Wallet     AccountType = "wallet"
	Cash       AccountType = "cash"
	CreditCard AccountType = "credit_card"
)

// Valid reports whether a is a known account type.
func (a AccountType) Valid() bool {
	switch a {
	case Bank, Wallet, Cash, CreditCard:
		return true
	}
	return false
}

// CategoryType partitions categories between income and expense.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Valid reports whether c is a known category type.
func (c CategoryType) Valid() bool {
	return c == CategoryIncome || c == CategoryExpense
}

// Transaction represents the internal domain model for a ledger entry.
// Amounts are stored in paise (int64 minor units). It includes dynamodbav
// tags for marshalling into the document backend.
type Transaction struct {
	Id            string            `json:"id" dynamodbav:"id"`
	OwnerId       string            `json:"owner_id" dynamodbav:"owner_id"`
	AccountId     string            `json:"account_id,omitempty" dynamodbav:"account_id,omitempty"`
	CategoryId    string            `json:"category_id,omitempty" dynamodbav:"category_id,omitempty"`
	Type          TransactionType   `json:"type" dynamodbav:"type"`
	Amount        int64             `json:"amount" dynamodbav:"amount"`
	Description   string            `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Merchant      string            `json:"merchant,omitempty" dynamodbav:"merchant,omitempty"`
	ReferenceId   string            `json:"reference_id,omitempty" dynamodbav:"reference_id,omitempty"`
	Source        TransactionSource `json:"source" dynamodbav:"source"`
	TransactionAt time.Time         `json:"transaction_at" dynamodbav:"transaction_at"`
	Location      string            `json:"location,omitempty" dynamodbav:"location,omitempty"`
	Tags          []string          `json:"tags,omitempty" dynamodbav:"tags,omitempty"`
	Notes         string            `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	IsRecurring   bool              `json:"is_recurring" dynamodbav:"is_recurring"`
	SMSHash       string            `json:"sms_hash,omitempty" dynamodbav:"sms_hash,omitempty"`
	CreatedAt     time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" dynamodbav:"updated_at"`

	// Denormalized display fields, populated on reads only.
	CategoryName  string `json:"category_name,omitempty" dynamodbav:"-"`
	CategoryIcon  string `json:"category_icon,omitempty" dynamodbav:"-"`
	CategoryColor string `json:"category_color,omitempty" dynamodbav:"-"`
	AccountName   string `json:"account_name,omitempty" dynamodbav:"-"`
}

// Account represents a user's financial account. Balance is the authoritative
// running total in paise and must only be mutated through AdjustBalance.
type Account struct {
	Id             string      `json:"id" dynamodbav:"id"`
	OwnerId        string      `json:"owner_id" dynamodbav:"owner_id"`
	Name           string      `json:"name" dynamodbav:"name"`
	Type           AccountType `json:"type" dynamodbav:"type"`
	Balance        int64       `json:"balance" dynamodbav:"balance"`
	// OpeningBalance is the balance at creation, before any reconciled
	// transactions. The audit job checks
	// balance == opening_balance + sum of signed deltas.
	OpeningBalance int64       `json:"opening_balance" dynamodbav:"opening_balance"`
	Institution    string      `json:"institution,omitempty" dynamodbav:"institution,omitempty"`
	AccountNumber  string      `json:"account_number,omitempty" dynamodbav:"account_number,omitempty"`
	Last4Digits    string      `json:"last_4_digits,omitempty" dynamodbav:"last_4_digits,omitempty"`
	Color          string      `json:"color" dynamodbav:"color"`
	Icon           string      `json:"icon" dynamodbav:"icon"`
	IsActive       bool        `json:"is_active" dynamodbav:"is_active"`
	CreatedAt      time.Time   `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" dynamodbav:"updated_at"`
}

// Category classifies transactions. System categories are seeded per owner
// and cannot be renamed or deleted.
type Category struct {
	Id        string       `json:"id" dynamodbav:"id"`
	OwnerId   string       `json:"owner_id" dynamodbav:"owner_id"`
	Name      string       `json:"name" dynamodbav:"name"`
	Type      CategoryType `json:"type" dynamodbav:"type"`
	Icon      string       `json:"icon" dynamodbav:"icon"`
	Color     string       `json:"color" dynamodbav:"color"`
	ParentId  string       `json:"parent_id,omitempty" dynamodbav:"parent_id,omitempty"`
	IsSystem  bool         `json:"is_system" dynamodbav:"is_system"`
	CreatedAt time.Time    `json:"created_at" dynamodbav:"created_at"`
}

// SignedDelta returns the effect a transaction has on its account balance:
// income adds the amount, expense and transfer subtract it.
func SignedDelta(t TransactionType, amount int64) int64 {
	if t == Income {
		return amount
	}
	return -amount
}

// ReverseType maps a transaction type to the type whose application undoes it.
// Transfers subtract on apply, so they reverse as income.
func ReverseType(t TransactionType) TransactionType {
	if t == Expense || t == Transfer {
		return Income
	}
	return Expense
}

// MonthlySummary aggregates a calendar month of transactions.
type MonthlySummary struct {
	Year             int   `json:"year"`
	Month            int   `json:"month"`
	TotalIncome      int64 `json:"total_income"`
	TotalExpense     int64 `json:"total_expense"`
	NetSavings       int64 `json:"net_savings"`
	TransactionCount int64 `json:"transaction_count"`
}

// DailyTrendPoint is one calendar day of income/expense totals.
type DailyTrendPoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// MerchantTotal is an expense aggregation for a single merchant.
type MerchantTotal struct {
	Merchant string `json:"merchant"`
	Total    int64  `json:"total"`
	Count    int64  `json:"count"`
}

// WeekdayTotal is an expense aggregation for a day of the week.
// Weekday follows time.Weekday numbering (Sunday = 0).
type WeekdayTotal struct {
	Weekday int   `json:"day_of_week"`
	Total   int64 `json:"total"`
}

// Analytics bundles the three independent range aggregations.
type Analytics struct {
	DailyTrend   []DailyTrendPoint `json:"daily_trend"`
	TopMerchants []MerchantTotal   `json:"top_merchants"`
	ByDayOfWeek  []WeekdayTotal    `json:"by_day_of_week"`
}

// CategoryStat is an expense aggregation for a single category.
type CategoryStat struct {
	CategoryId string `json:"category_id"`
	Name       string `json:"category_name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Total      int64  `json:"total"`
	Count      int64  `json:"count"`
}
