package budget

import (
	"time"

	"pennywise/internal/models"
)

// DefaultTrendCycles is the series length used when callers don't ask for
// a specific count: the current cycle plus four prior ones.
const DefaultTrendCycles = 5

// TrendPoint is one cycle's expense total in the historical comparison
// series.
type TrendPoint struct {
	Label         string  `json:"label"`
	TotalExpenses float64 `json:"total_expenses"`
	IsCurrent     bool    `json:"is_current"`
}

// BuildTrend sums expense amounts per cycle window, oldest first. Unlike
// the current-cycle summary, every window here is bounded on both ends.
//
// An empty ledger or a non-positive cycle length yields an empty series so
// consumers render a no-data state instead of a flat zero chart.
func BuildTrend(transactions []models.Transaction, cycleMonths int, now time.Time, count int) []TrendPoint {
	if len(transactions) == 0 || cycleMonths <= 0 {
		return []TrendPoint{}
	}

	expenses := FilterByType(transactions, models.TransactionTypeExpense)
	windows := HistoricalCycles(now, cycleMonths, count)

	points := make([]TrendPoint, 0, len(windows))
	for i, w := range windows {
		end := w.EndDate
		var total float64
		for _, tx := range FilterByWindow(expenses, w.StartDate, &end) {
			total += tx.Amount
		}
		points = append(points, TrendPoint{
			Label:         w.Label,
			TotalExpenses: total,
			IsCurrent:     i == len(windows)-1,
		})
	}
	return points
}
