package budget

import (
	"math"

	"pennywise/internal/models"
)

// DaysPerMonth is the fixed average used to scale daily limits to months.
// Deliberately not calendar-exact: variable month lengths would make a
// category's cycle limit drift from month to month.
const DaysPerMonth = 30.4375

// CycleAmount converts a limit expressed at a base frequency into the
// amount available over one cycle of cycleMonths months.
//
// A non-positive (or NaN) limit means "unset" and yields 0. An unknown
// frequency is treated as monthly, matching rows that predate the
// frequency field. cycleMonths below 1 is clamped to the default.
func CycleAmount(baseLimit float64, baseFrequency models.BaseFrequency, cycleMonths int) float64 {
	if baseLimit <= 0 || math.IsNaN(baseLimit) {
		return 0
	}
	if cycleMonths < 1 {
		cycleMonths = models.DefaultCycleMonths
	}

	switch baseFrequency {
	case models.FrequencyDaily:
		return baseLimit * float64(cycleMonths) * DaysPerMonth
	case models.FrequencyBimonthly:
		// One allotment covers two months, so a shorter cycle gets a
		// fractional share (cycleMonths=1 is half an allotment).
		return baseLimit * float64(cycleMonths) / 2
	default:
		return baseLimit * float64(cycleMonths)
	}
}
