package dynamodb

import (
	"context"
	"sort"
	"time"

	"github.com/anikets/paisaledger/pkg/models"
)

// The document backend has no server-side GROUP BY, so the aggregations
// query the owner/date-range index once and fold in memory.

// MonthlySummary sums amounts by type within the calendar month.
func (s *Store) MonthlySummary(ctx context.Context, ownerID string, year, month int) (*models.MonthlySummary, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	transactions, err := s.queryTransactionsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{Year: year, Month: month}
	for _, tx := range transactions {
		switch tx.Type {
		case models.Income:
			summary.TotalIncome += tx.Amount
		case models.Expense:
			summary.TotalExpense += tx.Amount
		}
		summary.TransactionCount++
	}
	summary.NetSavings = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}

// DailyTrend groups income/expense totals by calendar date.
func (s *Store) DailyTrend(ctx context.Context, ownerID string, start, end time.Time) ([]models.DailyTrendPoint, error) {
	transactions, err := s.queryTransactionsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.DailyTrendPoint)
	for _, tx := range transactions {
		date := tx.TransactionAt.Format("2006-01-02")
		point, ok := byDate[date]
		if !ok {
			point = &models.DailyTrendPoint{Date: date}
			byDate[date] = point
		}
		switch tx.Type {
		case models.Income:
			point.Income += tx.Amount
		case models.Expense:
			point.Expense += tx.Amount
		}
	}

	trend := make([]models.DailyTrendPoint, 0, len(byDate))
	for _, point := range byDate {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })

	return trend, nil
}

// TopMerchants returns up to limit merchants by total expense, descending.
func (s *Store) TopMerchants(ctx context.Context, ownerID string, start, end time.Time, limit int) ([]models.MerchantTotal, error) {
	transactions, err := s.queryTransactionsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	byMerchant := make(map[string]*models.MerchantTotal)
	for _, tx := range transactions {
		if tx.Type != models.Expense || tx.Merchant == "" {
			continue
		}
		total, ok := byMerchant[tx.Merchant]
		if !ok {
			total = &models.MerchantTotal{Merchant: tx.Merchant}
			byMerchant[tx.Merchant] = total
		}
		total.Total += tx.Amount
		total.Count++
	}

	merchants := make([]models.MerchantTotal, 0, len(byMerchant))
	for _, total := range byMerchant {
		merchants = append(merchants, *total)
	}
	sort.Slice(merchants, func(i, j int) bool { return merchants[i].Total > merchants[j].Total })
	if limit > 0 && len(merchants) > limit {
		merchants = merchants[:limit]
	}

	return merchants, nil
}

// SpendingByWeekday groups expense totals by day of week, Sunday first.
func (s *Store) SpendingByWeekday(ctx context.Context, ownerID string, start, end time.Time) ([]models.WeekdayTotal, error) {
	transactions, err := s.queryTransactionsByOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	var totals [7]int64
	var seen [7]bool
	for _, tx := range transactions {
		if tx.Type != models.Expense {
			continue
		}
		day := int(tx.TransactionAt.Weekday())
		totals[day] += tx.Amount
		seen[day] = true
	}

	weekdays := make([]models.WeekdayTotal, 0, 7)
	for day := 0; day < 7; day++ {
		if seen[day] {
			weekdays = append(weekdays, models.WeekdayTotal{Weekday: day, Total: totals[day]})
		}
	}

	return weekdays, nil
}
