package budget

import (
	"testing"
	"time"

	"pennywise/internal/models"
)

func TestBuildTrend(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		expenseAt("cat-1", 100, "Supermart", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)),
		expenseAt("cat-1", 50, "Supermart", time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)),
		expenseAt("cat-1", 25, "Supermart", time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)),
		// Income never contributes to the expense trend.
		incomeAt(1000, "Salary", time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
		// Older than the requested window.
		expenseAt("cat-1", 999, "Supermart", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := BuildTrend(transactions, 1, now, 5)
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}

	wantTotals := []float64{0, 25, 0, 50, 100}
	for i, want := range wantTotals {
		if points[i].TotalExpenses != want {
			t.Errorf("point %d (%s): TotalExpenses = %v, want %v",
				i, points[i].Label, points[i].TotalExpenses, want)
		}
	}

	for i, p := range points {
		isLast := i == len(points)-1
		if p.IsCurrent != isLast {
			t.Errorf("point %d: IsCurrent = %v, want %v", i, p.IsCurrent, isLast)
		}
	}
	if points[4].Label != CurrentCycleLabel {
		t.Errorf("last point label = %q, want %q", points[4].Label, CurrentCycleLabel)
	}
	if points[0].Label != "Nov 2024" {
		t.Errorf("oldest point label = %q, want %q", points[0].Label, "Nov 2024")
	}
}

func TestBuildTrendEmpty(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no transactions", func(t *testing.T) {
		points := BuildTrend(nil, 1, now, 5)
		if points == nil || len(points) != 0 {
			t.Errorf("expected empty non-nil series, got %v", points)
		}
	})

	t.Run("non-positive cycle months", func(t *testing.T) {
		transactions := []models.Transaction{
			expenseAt("cat-1", 10, "Supermart", now),
		}
		points := BuildTrend(transactions, 0, now, 5)
		if len(points) != 0 {
			t.Errorf("expected empty series for cycleMonths=0, got %v", points)
		}
	})
}

func TestBuildTrendMultiMonthCycles(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		// Current cycle: Apr 1 onward.
		expenseAt("cat-1", 10, "Supermart", time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)),
		// Previous cycle: Jan 1 through Mar.
		expenseAt("cat-1", 20, "Supermart", time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := BuildTrend(transactions, 3, now, 2)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].TotalExpenses != 20 {
		t.Errorf("previous cycle total = %v, want 20", points[0].TotalExpenses)
	}
	if points[1].TotalExpenses != 10 {
		t.Errorf("current cycle total = %v, want 10", points[1].TotalExpenses)
	}
	if !points[1].IsCurrent || points[0].IsCurrent {
		t.Errorf("IsCurrent flags wrong: %+v", points)
	}
}
