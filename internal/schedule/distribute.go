package schedule

import (
	"math"
	"time"
)

// Distribute assigns the segments to targetDays consecutive calendar days
// starting at start.
//
// Day d takes every unconsumed segment with index below
// round((d+1) * len(segments)/targetDays). A day that receives nothing is
// not emitted but still advances the date, so the result can be shorter than
// targetDays when there are fewer segments than days.
func Distribute(segments []Segment, start time.Time, targetDays int) []Day {
	if targetDays <= 0 || len(segments) == 0 {
		return nil
	}

	perDay := float64(len(segments)) / float64(targetDays)
	base := calendarDate(start)
	plan := make([]Day, 0, min(targetDays, len(segments)))
	next := 0

	for day := 0; day < targetDays; day++ {
		end := min(int(math.Round(float64(day+1)*perDay)), len(segments))
		if next >= end {
			continue
		}
		readings := make([]string, 0, end-next)
		for ; next < end; next++ {
			readings = append(readings, segments[next].Label())
		}
		plan = append(plan, Day{Date: addDays(base, day), Readings: readings})
	}
	return plan
}
