package budget

import (
	"sort"
	"time"

	"pennywise/internal/models"
)

// RowStatus bands a category row for presentation.
type RowStatus string

const (
	StatusNormal   RowStatus = "normal"
	StatusWarning  RowStatus = "warning"
	StatusCritical RowStatus = "critical"
)

func statusFor(percentage float64) RowStatus {
	switch {
	case percentage > 100:
		return StatusCritical
	case percentage > 75:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// SourceAmount is one payment source's share of cycle spending.
type SourceAmount struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

// CategoryRow is the per-category line every budget view renders.
// Overspend is only set when spending exceeds the cycle limit.
type CategoryRow struct {
	CategoryID    string               `json:"category_id"`
	Name          string               `json:"name"`
	Spent         float64              `json:"spent"`
	CycleLimit    float64              `json:"cycle_limit"`
	BaseLimit     float64              `json:"base_limit"`
	BaseFrequency models.BaseFrequency `json:"base_frequency"`
	Percentage    float64              `json:"percentage"`
	Overspend     float64              `json:"overspend,omitempty"`
	Status        RowStatus            `json:"status"`
	Color         string               `json:"color"`
	Icon          string               `json:"icon"`
}

// Summary is the derived aggregate of limits vs spend for the current cycle.
//
// Remaining is measured against category limits while IsOverActualIncome is
// measured against recorded income. These are two different budget
// philosophies and both figures are kept, deliberately unreconciled.
type Summary struct {
	CycleStart         time.Time          `json:"cycle_start"`
	TotalBudgetLimit   float64            `json:"total_budget_limit"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	Remaining          float64            `json:"remaining"`
	IsOverActualIncome bool               `json:"is_over_actual_income"`
	ExpenseBySource    []SourceAmount     `json:"expense_by_source"`
	ExpenseByCategory  map[string]float64 `json:"expense_by_category"`
	Categories         []CategoryRow      `json:"categories"`
}

// Summarize aggregates a full snapshot of categories, transactions, and
// settings into the current-cycle summary. It is deterministic: identical
// snapshots yield identical summaries.
func Summarize(categories []models.Category, transactions []models.Transaction, settings models.Settings, now time.Time) Summary {
	cycleMonths := settings.CycleMonths
	if cycleMonths < 1 {
		cycleMonths = models.DefaultCycleMonths
	}
	start := CurrentCycleStart(now, cycleMonths)

	expenses := FilterByWindow(FilterByType(transactions, models.TransactionTypeExpense), start, nil)
	income := FilterByWindow(FilterByType(transactions, models.TransactionTypeBudget), start, nil)

	s := Summary{
		CycleStart:        start,
		ExpenseByCategory: make(map[string]float64),
	}

	for _, tx := range income {
		s.TotalIncome += tx.Amount
	}

	bySource := make(map[string]float64)
	for _, tx := range expenses {
		s.TotalExpenses += tx.Amount
		s.ExpenseByCategory[tx.CategoryID] += tx.Amount
		bySource[tx.Source] += tx.Amount
	}

	for _, cat := range categories {
		s.TotalBudgetLimit += CycleAmount(cat.BaseLimit, cat.BaseFrequency, cycleMonths)
	}
	s.Remaining = s.TotalBudgetLimit - s.TotalExpenses

	// Only flag overspending against income once income has actually been
	// recorded; otherwise the first expense of every cycle would trip it.
	s.IsOverActualIncome = s.TotalIncome > 0 && s.TotalExpenses > s.TotalIncome

	s.ExpenseBySource = make([]SourceAmount, 0, len(bySource))
	for source, amount := range bySource {
		s.ExpenseBySource = append(s.ExpenseBySource, SourceAmount{Source: source, Amount: amount})
	}
	sort.Slice(s.ExpenseBySource, func(i, j int) bool {
		if s.ExpenseBySource[i].Amount != s.ExpenseBySource[j].Amount {
			return s.ExpenseBySource[i].Amount > s.ExpenseBySource[j].Amount
		}
		return s.ExpenseBySource[i].Source < s.ExpenseBySource[j].Source
	})

	// Categories with neither spend nor a configured limit are dropped from
	// presentation; they still exist in the store.
	s.Categories = make([]CategoryRow, 0, len(categories))
	for _, cat := range categories {
		spent := s.ExpenseByCategory[cat.ID]
		cycleLimit := CycleAmount(cat.BaseLimit, cat.BaseFrequency, cycleMonths)
		if spent <= 0 && cycleLimit <= 0 {
			continue
		}

		row := CategoryRow{
			CategoryID:    cat.ID,
			Name:          cat.Name,
			Spent:         spent,
			CycleLimit:    cycleLimit,
			BaseLimit:     cat.BaseLimit,
			BaseFrequency: cat.BaseFrequency,
			Color:         cat.Color,
			Icon:          cat.Icon,
		}
		if cycleLimit > 0 {
			row.Percentage = spent / cycleLimit * 100
		}
		row.Status = statusFor(row.Percentage)
		if row.Percentage > 100 {
			row.Overspend = spent - cycleLimit
		}
		s.Categories = append(s.Categories, row)
	}

	return s
}
