package schedule

import (
	"time"

	"bibleplan/internal/fixedplan"
)

// ApplyFixed dates a fixed plan: reading i lands on start+i days, one label
// per day, text unchanged.
func ApplyFixed(plan fixedplan.Plan, start time.Time) []Day {
	base := calendarDate(start)
	days := make([]Day, len(plan.Readings))
	for i, label := range plan.Readings {
		days[i] = Day{Date: addDays(base, i), Readings: []string{label}}
	}
	return days
}
