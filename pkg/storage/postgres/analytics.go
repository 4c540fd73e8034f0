package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/anikets/paisaledger/pkg/models"
)

// MonthlySummary sums amounts by type within the calendar month.
func (s *Store) MonthlySummary(ctx context.Context, ownerID string, year, month int) (*models.MonthlySummary, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	summary := &models.MonthlySummary{Year: year, Month: month}
	err := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0),
			COUNT(*)
		 FROM transactions
		 WHERE user_id = $1 AND transaction_at >= $2 AND transaction_at < $3`,
		ownerID, start, end,
	).Scan(&summary.TotalIncome, &summary.TotalExpense, &summary.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly summary: %w", err)
	}
	summary.NetSavings = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}

// DailyTrend groups income/expense totals by calendar date over [start, end].
func (s *Store) DailyTrend(ctx context.Context, ownerID string, start, end time.Time) ([]models.DailyTrendPoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT to_char(transaction_at::date, 'YYYY-MM-DD'),
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0)
		 FROM transactions
		 WHERE user_id = $1 AND transaction_at >= $2 AND transaction_at <= $3
		 GROUP BY transaction_at::date
		 ORDER BY transaction_at::date`,
		ownerID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily trend: %w", err)
	}
	defer rows.Close()

	points := []models.DailyTrendPoint{}
	for rows.Next() {
		var p models.DailyTrendPoint
		if err := rows.Scan(&p.Date, &p.Income, &p.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan trend point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// TopMerchants returns up to limit merchants by total expense, descending.
func (s *Store) TopMerchants(ctx context.Context, ownerID string, start, end time.Time, limit int) ([]models.MerchantTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT merchant, SUM(amount), COUNT(*)
		 FROM transactions
		 WHERE user_id = $1 AND type = 'expense' AND merchant IS NOT NULL AND merchant <> ''
			AND transaction_at >= $2 AND transaction_at <= $3
		 GROUP BY merchant
		 ORDER BY SUM(amount) DESC
		 LIMIT $4`,
		ownerID, start, end, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top merchants: %w", err)
	}
	defer rows.Close()

	merchants := []models.MerchantTotal{}
	for rows.Next() {
		var m models.MerchantTotal
		if err := rows.Scan(&m.Merchant, &m.Total, &m.Count); err != nil {
			return nil, fmt.Errorf("failed to scan merchant total: %w", err)
		}
		merchants = append(merchants, m)
	}
	return merchants, rows.Err()
}

// SpendingByWeekday groups expense totals by day of week over [start, end].
// Weekday numbering matches EXTRACT(DOW), Sunday = 0.
func (s *Store) SpendingByWeekday(ctx context.Context, ownerID string, start, end time.Time) ([]models.WeekdayTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT EXTRACT(DOW FROM transaction_at)::int, SUM(amount)
		 FROM transactions
		 WHERE user_id = $1 AND type = 'expense'
			AND transaction_at >= $2 AND transaction_at <= $3
		 GROUP BY 1
		 ORDER BY 1`,
		ownerID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute weekday spending: %w", err)
	}
	defer rows.Close()

	totals := []models.WeekdayTotal{}
	for rows.Next() {
		var w models.WeekdayTotal
		if err := rows.Scan(&w.Weekday, &w.Total); err != nil {
			return nil, fmt.Errorf("failed to scan weekday total: %w", err)
		}
		totals = append(totals, w)
	}
	return totals, rows.Err()
}
