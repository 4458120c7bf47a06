package budget

import (
	"fmt"
	"time"

	"pennywise/internal/models"
)

// CurrentCycleLabel marks the open cycle in historical series.
const CurrentCycleLabel = "Current"

// CurrentCycleStart returns the inclusive lower bound of the cycle
// containing now: the first day of now's month at midnight, stepped back
// cycleMonths-1 whole months. The current cycle has no upper bound;
// callers filter with timestamp >= start only.
func CurrentCycleStart(now time.Time, cycleMonths int) time.Time {
	if cycleMonths < 1 {
		cycleMonths = models.DefaultCycleMonths
	}
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -(cycleMonths - 1), 0)
}

// CycleWindow is one budget cycle for historical views. Closed past cycles
// are bounded on both ends; the current cycle's EndDate is simply now.
type CycleWindow struct {
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// HistoricalCycles returns count consecutive cycle windows ending at now,
// ordered oldest first so trend charts read left to right. The final
// window is the current cycle, labeled "Current".
func HistoricalCycles(now time.Time, cycleMonths, count int) []CycleWindow {
	if cycleMonths < 1 {
		cycleMonths = models.DefaultCycleMonths
	}
	if count < 1 {
		return nil
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// i counts cycles back from the present; windows are stored reversed
	// so index 0 ends up the oldest.
	windows := make([]CycleWindow, count)
	for i := 0; i < count; i++ {
		start := firstOfMonth.AddDate(0, -((i+1)*cycleMonths - 1), 0)
		end := now.AddDate(0, -i*cycleMonths, 0)

		label := CurrentCycleLabel
		if i > 0 {
			label = windowLabel(start, end, cycleMonths)
		}
		windows[count-1-i] = CycleWindow{Label: label, StartDate: start, EndDate: end}
	}
	return windows
}

// windowLabel renders a closed cycle as a short month span.
func windowLabel(start, end time.Time, cycleMonths int) string {
	if cycleMonths == 1 {
		return start.Format("Jan 2006")
	}
	return fmt.Sprintf("%s-%s %d", start.Format("Jan"), end.Format("Jan"), end.Year())
}
