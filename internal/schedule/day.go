package schedule

import "time"

// Day is one dated entry of a reading plan.
type Day struct {
	Date     time.Time
	Readings []string
}

// calendarDate drops the clock part of t, keeping its location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// addDays steps by calendar days rather than 24h durations so DST
// transitions never shift the date.
func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
