package format

import (
	"testing"
	"time"

	"bibleplan/internal/schedule"
)

type stubLocale struct{}

func (stubLocale) ShortWeekday(w time.Weekday) string { return w.String()[:2] }
func (stubLocale) Month(m time.Month) string          { return m.String() }

func TestDay(t *testing.T) {
	day := schedule.Day{
		Date:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Readings: []string{"Мф.1", "Мф.2:1–12"},
	}
	want := "We, 1 January — Мф.1; Мф.2:1–12"
	if got := Day(day, stubLocale{}); got != want {
		t.Fatalf("Day() = %q, want %q", got, want)
	}
}

func TestContinuous(t *testing.T) {
	days := []schedule.Day{
		{Date: time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), Readings: []string{"Рим.1"}},
		{Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), Readings: []string{"Рим.2", "Рим.3"}},
	}
	want := "Mo, 31 March — Рим.1; Tu, 1 April — Рим.2; Рим.3"
	if got := Continuous(days, stubLocale{}); got != want {
		t.Fatalf("Continuous() = %q, want %q", got, want)
	}
	if got := Continuous(nil, stubLocale{}); got != "" {
		t.Fatalf("Continuous(nil) = %q, want empty", got)
	}
}
