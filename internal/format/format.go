// Package format renders reading days into display strings.
//
// Weekday and month names come from a Locale supplied by the caller; this
// package only owns the template "{weekday}, {day} {month} — {readings}".
package format

import (
	"strconv"
	"strings"
	"time"

	"bibleplan/internal/schedule"
)

// Locale supplies localized date names.
type Locale interface {
	ShortWeekday(time.Weekday) string
	Month(time.Month) string
}

const (
	readingSeparator = "; "
	daySeparator     = "; "
)

// Day renders one reading day, e.g. "ср, 1 январь — Мф.1; Мф.2".
func Day(day schedule.Day, loc Locale) string {
	var b strings.Builder
	writeDay(&b, day, loc)
	return b.String()
}

// Continuous renders every day with the Day template joined by "; " into a
// single string for renderers that paginate text themselves.
func Continuous(days []schedule.Day, loc Locale) string {
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString(daySeparator)
		}
		writeDay(&b, day, loc)
	}
	return b.String()
}

func writeDay(b *strings.Builder, day schedule.Day, loc Locale) {
	b.WriteString(loc.ShortWeekday(day.Date.Weekday()))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(day.Date.Day()))
	b.WriteByte(' ')
	b.WriteString(loc.Month(day.Date.Month()))
	b.WriteString(" — ")
	b.WriteString(strings.Join(day.Readings, readingSeparator))
}
