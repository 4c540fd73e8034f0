// Package mapping converts between the wire types of pkg/api and the domain
// models, translating rupee amounts to paise at the boundary.
package mapping

import (
	"fmt"

	"github.com/anikets/paisaledger/pkg/api"
	"github.com/anikets/paisaledger/pkg/ledger"
	"github.com/anikets/paisaledger/pkg/models"
	"github.com/anikets/paisaledger/pkg/money"
)

// ToDomainDraft converts a create-transaction request to a ledger draft.
func ToDomainDraft(newTx *api.NewTransaction) (ledger.TransactionDraft, error) {
	amount, err := money.ToPaise(newTx.Amount)
	if err != nil {
		return ledger.TransactionDraft{}, fmt.Errorf("amount: %w", err)
	}

	draft := ledger.TransactionDraft{
		Type:         models.TransactionType(newTx.Type),
		Amount:       amount,
		Description:  newTx.Description,
		Merchant:     newTx.Merchant,
		CategoryId:   newTx.CategoryId,
		CategoryName: newTx.CategoryName,
		AccountId:    newTx.AccountId,
		AccountLast4: newTx.AccountLast4,
		ReferenceId:  newTx.ReferenceId,
		Source:       models.TransactionSource(newTx.Source),
		Location:     newTx.Location,
		Tags:         newTx.Tags,
		Notes:        newTx.Notes,
		IsRecurring:  newTx.IsRecurring,
		SMSHash:      newTx.SMSHash,
	}
	if newTx.TransactionAt != nil {
		draft.TransactionAt = *newTx.TransactionAt
	}
	return draft, nil
}

// ToDomainPatch converts an update-transaction request to a ledger patch.
func ToDomainPatch(upd *api.UpdateTransaction) (ledger.TransactionPatch, error) {
	patch := ledger.TransactionPatch{
		Description:   upd.Description,
		Merchant:      upd.Merchant,
		CategoryId:    upd.CategoryId,
		CategoryName:  upd.CategoryName,
		AccountId:     upd.AccountId,
		ReferenceId:   upd.ReferenceId,
		TransactionAt: upd.TransactionAt,
		Location:      upd.Location,
		Tags:          upd.Tags,
		Notes:         upd.Notes,
		IsRecurring:   upd.IsRecurring,
	}
	if upd.Type != nil {
		t := models.TransactionType(*upd.Type)
		patch.Type = &t
	}
	if upd.Amount != nil {
		amount, err := money.ToPaise(*upd.Amount)
		if err != nil {
			return ledger.TransactionPatch{}, fmt.Errorf("amount: %w", err)
		}
		patch.Amount = &amount
	}
	return patch, nil
}

// ToApiTransaction converts a resolved domain transaction to its wire shape.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:            tx.Id,
		Type:          string(tx.Type),
		Amount:        money.ToRupees(tx.Amount),
		Description:   tx.Description,
		Merchant:      tx.Merchant,
		CategoryId:    tx.CategoryId,
		CategoryName:  tx.CategoryName,
		CategoryIcon:  tx.CategoryIcon,
		CategoryColor: tx.CategoryColor,
		AccountId:     tx.AccountId,
		AccountName:   tx.AccountName,
		ReferenceId:   tx.ReferenceId,
		Source:        string(tx.Source),
		TransactionAt: tx.TransactionAt,
		Location:      tx.Location,
		Tags:          tx.Tags,
		Notes:         tx.Notes,
		IsRecurring:   tx.IsRecurring,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

// ToApiTransactionPage converts a listing envelope to its wire shape.
func ToApiTransactionPage(page *ledger.TransactionPage) *api.TransactionPage {
	items := make([]api.Transaction, len(page.Items))
	for i := range page.Items {
		items[i] = *ToApiTransaction(&page.Items[i])
	}
	return &api.TransactionPage{
		Items: items,
		Pagination: api.Pagination{
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
		},
	}
}

// ToApiSyncResult converts a sync outcome to its wire shape.
func ToApiSyncResult(result *ledger.SyncResult) *api.SyncResult {
	errs := make([]api.SyncError, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = api.SyncError{Index: e.Index, Message: e.Message}
	}
	return &api.SyncResult{
		Created: result.Created,
		Skipped: result.Skipped,
		Errors:  errs,
	}
}

// ToApiMonthlySummary converts the month aggregation to rupee amounts.
func ToApiMonthlySummary(summary *models.MonthlySummary) *api.MonthlySummary {
	return &api.MonthlySummary{
		Year:             summary.Year,
		Month:            summary.Month,
		TotalIncome:      money.ToRupees(summary.TotalIncome),
		TotalExpense:     money.ToRupees(summary.TotalExpense),
		NetSavings:       money.ToRupees(summary.NetSavings),
		TransactionCount: summary.TransactionCount,
	}
}

// ToApiAnalytics converts the range aggregations to rupee amounts.
func ToApiAnalytics(analytics *models.Analytics) *api.Analytics {
	out := &api.Analytics{
		DailyTrend:   make([]api.DailyTrendPoint, len(analytics.DailyTrend)),
		TopMerchants: make([]api.MerchantTotal, len(analytics.TopMerchants)),
		ByDayOfWeek:  make([]api.WeekdayTotal, len(analytics.ByDayOfWeek)),
	}
	for i, p := range analytics.DailyTrend {
		out.DailyTrend[i] = api.DailyTrendPoint{
			Date:    p.Date,
			Income:  money.ToRupees(p.Income),
			Expense: money.ToRupees(p.Expense),
		}
	}
	for i, m := range analytics.TopMerchants {
		out.TopMerchants[i] = api.MerchantTotal{
			Merchant: m.Merchant,
			Total:    money.ToRupees(m.Total),
			Count:    m.Count,
		}
	}
	for i, w := range analytics.ByDayOfWeek {
		out.ByDayOfWeek[i] = api.WeekdayTotal{
			DayOfWeek: w.Weekday,
			Total:     money.ToRupees(w.Total),
		}
	}
	return out
}

// ToDomainAccountDraft converts a create-account request to a ledger draft.
func ToDomainAccountDraft(newAccount *api.NewAccount) (ledger.AccountDraft, error) {
	balance, err := money.ToPaise(newAccount.Balance)
	if err != nil {
		return ledger.AccountDraft{}, fmt.Errorf("balance: %w", err)
	}
	return ledger.AccountDraft{
		Name:          newAccount.Name,
		Type:          models.AccountType(newAccount.Type),
		Balance:       balance,
		Institution:   newAccount.Institution,
		AccountNumber: newAccount.AccountNumber,
		Last4Digits:   newAccount.Last4Digits,
		Color:         newAccount.Color,
		Icon:          newAccount.Icon,
	}, nil
}

// ToDomainAccountPatch converts an update-account request to a ledger patch.
func ToDomainAccountPatch(upd *api.UpdateAccount) ledger.AccountPatch {
	patch := ledger.AccountPatch{
		Name:          upd.Name,
		Institution:   upd.Institution,
		AccountNumber: upd.AccountNumber,
		Last4Digits:   upd.Last4Digits,
		Color:         upd.Color,
		Icon:          upd.Icon,
		IsActive:      upd.IsActive,
	}
	if upd.Type != nil {
		t := models.AccountType(*upd.Type)
		patch.Type = &t
	}
	return patch
}

// ToApiAccount converts a domain account to its wire shape.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Id:            account.Id,
		Name:          account.Name,
		Type:          string(account.Type),
		Balance:       money.ToRupees(account.Balance),
		Institution:   account.Institution,
		AccountNumber: account.AccountNumber,
		Last4Digits:   account.Last4Digits,
		Color:         account.Color,
		Icon:          account.Icon,
		IsActive:      account.IsActive,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// ToDomainCategoryDraft converts a create-category request to a ledger draft.
func ToDomainCategoryDraft(newCategory *api.NewCategory) ledger.CategoryDraft {
	return ledger.CategoryDraft{
		Name:     newCategory.Name,
		Type:     models.CategoryType(newCategory.Type),
		Icon:     newCategory.Icon,
		Color:    newCategory.Color,
		ParentId: newCategory.ParentId,
	}
}

// ToDomainCategoryPatch converts an update-category request to a ledger patch.
func ToDomainCategoryPatch(upd *api.UpdateCategory) ledger.CategoryPatch {
	return ledger.CategoryPatch{
		Name:  upd.Name,
		Icon:  upd.Icon,
		Color: upd.Color,
	}
}

// ToApiCategory converts a domain category to its wire shape.
func ToApiCategory(category *models.Category) *api.Category {
	return &api.Category{
		Id:        category.Id,
		Name:      category.Name,
		Type:      string(category.Type),
		Icon:      category.Icon,
		Color:     category.Color,
		ParentId:  category.ParentId,
		IsSystem:  category.IsSystem,
		CreatedAt: category.CreatedAt,
	}
}

// ToApiCategoryStats converts the category aggregation to rupee amounts.
func ToApiCategoryStats(stats []models.CategoryStat) []api.CategoryStat {
	out := make([]api.CategoryStat, len(stats))
	for i, s := range stats {
		out[i] = api.CategoryStat{
			CategoryId: s.CategoryId,
			Name:       s.Name,
			Icon:       s.Icon,
			Color:      s.Color,
			Total:      money.ToRupees(s.Total),
			Count:      s.Count,
		}
	}
	return out
}
