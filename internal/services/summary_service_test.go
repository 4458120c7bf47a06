package services

import (
	"testing"
	"time"

	"pennywise/internal/budget"
	"pennywise/internal/models"
	"pennywise/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	t.Run("aggregates_current_cycle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db, NewSettingsService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategoryWithName(t, db, user.ID, "Groceries", 200, models.FrequencyMonthly)

		now := time.Now()
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, 50, now)
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, 30, now)
		testutil.CreateTestIncome(t, db, user.ID, 2000, "Salary", now)

		summary, err := svc.GetSummary(user.ID)
		testutil.AssertNoError(t, err)

		if summary.TotalExpenses != 80 {
			t.Errorf("TotalExpenses = %v, want 80", summary.TotalExpenses)
		}
		if summary.TotalIncome != 2000 {
			t.Errorf("TotalIncome = %v, want 2000", summary.TotalIncome)
		}
		if summary.TotalBudgetLimit != 200 {
			t.Errorf("TotalBudgetLimit = %v, want 200", summary.TotalBudgetLimit)
		}
		if summary.Remaining != 120 {
			t.Errorf("Remaining = %v, want 120", summary.Remaining)
		}
		if len(summary.Categories) != 1 || summary.Categories[0].Name != "Groceries" {
			t.Errorf("unexpected category rows: %+v", summary.Categories)
		}
	})

	t.Run("ignores_other_users_data", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db, NewSettingsService(db))
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		otherCat := testutil.CreateTestCategory(t, db, other.ID, 500, models.FrequencyMonthly)
		testutil.CreateTestExpense(t, db, other.ID, otherCat.ID, 100, time.Now())

		summary, err := svc.GetSummary(user.ID)
		testutil.AssertNoError(t, err)

		if summary.TotalExpenses != 0 || summary.TotalBudgetLimit != 0 {
			t.Errorf("summary leaked another user's data: %+v", summary)
		}
	})

	t.Run("works_without_settings_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db, NewSettingsService(db))
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetSummary(user.ID)
		testutil.AssertNoError(t, err)

		// Settings get lazily created with a one month cycle.
		wantStart := budget.CurrentCycleStart(time.Now(), models.DefaultCycleMonths)
		if !summary.CycleStart.Equal(wantStart) {
			t.Errorf("CycleStart = %v, want %v", summary.CycleStart, wantStart)
		}
	})
}

func TestGetTrend(t *testing.T) {
	t.Run("defaults_cycle_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db, NewSettingsService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, 0, models.FrequencyMonthly)
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, 10, time.Now())

		trend, err := svc.GetTrend(user.ID, 0)
		testutil.AssertNoError(t, err)

		if len(trend) != budget.DefaultTrendCycles {
			t.Fatalf("expected %d points, got %d", budget.DefaultTrendCycles, len(trend))
		}
		last := trend[len(trend)-1]
		if !last.IsCurrent || last.Label != budget.CurrentCycleLabel {
			t.Errorf("last point = %+v, want current cycle", last)
		}
		if last.TotalExpenses != 10 {
			t.Errorf("current cycle total = %v, want 10", last.TotalExpenses)
		}
	})

	t.Run("empty_ledger_yields_empty_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db, NewSettingsService(db))
		user := testutil.CreateTestUser(t, db)

		trend, err := svc.GetTrend(user.ID, 5)
		testutil.AssertNoError(t, err)
		if len(trend) != 0 {
			t.Errorf("expected empty series, got %v", trend)
		}
	})

	t.Run("explicit_cycle_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db, NewSettingsService(db))
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, 0, models.FrequencyMonthly)
		testutil.CreateTestExpense(t, db, user.ID, cat.ID, 10, time.Now())

		trend, err := svc.GetTrend(user.ID, 3)
		testutil.AssertNoError(t, err)
		if len(trend) != 3 {
			t.Errorf("expected 3 points, got %d", len(trend))
		}
	})
}
