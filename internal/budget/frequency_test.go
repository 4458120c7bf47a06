package budget

import (
	"math"
	"testing"

	"pennywise/internal/models"
)

func TestCycleAmount(t *testing.T) {
	tests := []struct {
		name        string
		baseLimit   float64
		frequency   models.BaseFrequency
		cycleMonths int
		want        float64
	}{
		{"monthly single cycle", 200, models.FrequencyMonthly, 1, 200},
		{"monthly two month cycle", 200, models.FrequencyMonthly, 2, 400},
		{"monthly quarterly cycle", 150, models.FrequencyMonthly, 3, 450},
		{"monthly yearly cycle", 50, models.FrequencyMonthly, 12, 600},
		{"daily two month cycle", 100, models.FrequencyDaily, 2, 100 * 2 * DaysPerMonth},
		{"daily single cycle", 10, models.FrequencyDaily, 1, 10 * DaysPerMonth},
		{"bimonthly two month cycle", 150, models.FrequencyBimonthly, 2, 150},
		{"bimonthly single cycle is half an allotment", 150, models.FrequencyBimonthly, 1, 75},
		{"bimonthly six month cycle", 100, models.FrequencyBimonthly, 6, 300},
		{"zero limit", 0, models.FrequencyMonthly, 1, 0},
		{"negative limit treated as unset", -5, models.FrequencyMonthly, 1, 0},
		{"negative limit daily", -100, models.FrequencyDaily, 3, 0},
		{"unknown frequency treated as monthly", 200, models.BaseFrequency("weekly"), 2, 400},
		{"empty frequency treated as monthly", 200, models.BaseFrequency(""), 1, 200},
		{"cycle months below one clamped to default", 200, models.FrequencyMonthly, 0, 200},
		{"negative cycle months clamped to default", 200, models.FrequencyMonthly, -3, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CycleAmount(tt.baseLimit, tt.frequency, tt.cycleMonths)
			if got != tt.want {
				t.Errorf("CycleAmount(%v, %q, %d) = %v, want %v",
					tt.baseLimit, tt.frequency, tt.cycleMonths, got, tt.want)
			}
		})
	}
}

func TestCycleAmountNaN(t *testing.T) {
	got := CycleAmount(math.NaN(), models.FrequencyMonthly, 1)
	if got != 0 {
		t.Errorf("CycleAmount(NaN, monthly, 1) = %v, want 0", got)
	}
}

func TestCycleAmountMonthlyIdentity(t *testing.T) {
	// For every allowed cycle length, a monthly limit scales linearly.
	for _, cycleMonths := range models.AllowedCycleMonths {
		for _, limit := range []float64{0.01, 1, 99.99, 2500} {
			got := CycleAmount(limit, models.FrequencyMonthly, cycleMonths)
			want := limit * float64(cycleMonths)
			if got != want {
				t.Errorf("CycleAmount(%v, monthly, %d) = %v, want %v", limit, cycleMonths, got, want)
			}
		}
	}
}
