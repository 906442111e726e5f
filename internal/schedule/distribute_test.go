package schedule

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return d
}

func TestDistributeGroupsByRoundingCursor(t *testing.T) {
	segments := BuildSegments(syntheticChapters("X", 1, 1, 1, 1, 1, 1, 1, 1, 1, 1), 1)
	start := mustDate(t, "2025-01-01")

	days := Distribute(segments, start, 4)
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	wantSizes := []int{3, 2, 3, 2}
	total := 0
	for i, day := range days {
		if len(day.Readings) != wantSizes[i] {
			t.Fatalf("day %d has %d readings, want %d", i, len(day.Readings), wantSizes[i])
		}
		if want := start.AddDate(0, 0, i); !day.Date.Equal(want) {
			t.Fatalf("day %d dated %s, want %s", i, day.Date, want)
		}
		total += len(day.Readings)
	}
	if total != len(segments) {
		t.Fatalf("distributed %d readings, want %d", total, len(segments))
	}
	if days[0].Readings[0] != "X1" || days[3].Readings[1] != "X10" {
		t.Fatalf("readings out of order: %v", days)
	}
}

func TestDistributeSkipsStarvedDays(t *testing.T) {
	segments := BuildSegments(syntheticChapters("X", 1, 1, 1), 3)
	start := mustDate(t, "2025-03-01")

	days := Distribute(segments, start, 5)
	if len(days) != 3 {
		t.Fatalf("expected 3 emitted days, got %d", len(days))
	}
	wantDates := []string{"2025-03-01", "2025-03-03", "2025-03-05"}
	wantReadings := []string{"X1", "X2", "X3"}
	for i, day := range days {
		if got := day.Date.Format("2006-01-02"); got != wantDates[i] {
			t.Fatalf("day %d dated %s, want %s", i, got, wantDates[i])
		}
		if len(day.Readings) != 1 || day.Readings[0] != wantReadings[i] {
			t.Fatalf("day %d readings %v, want [%s]", i, day.Readings, wantReadings[i])
		}
	}
}

func TestDistributeEmptyInputs(t *testing.T) {
	start := mustDate(t, "2025-01-01")
	if days := Distribute(nil, start, 10); len(days) != 0 {
		t.Fatalf("expected no days for no segments, got %d", len(days))
	}
	segments := BuildSegments(syntheticChapters("X", 5), 1)
	if days := Distribute(segments, start, 0); len(days) != 0 {
		t.Fatalf("expected no days for zero target, got %d", len(days))
	}
}

func TestDistributeDropsClockTime(t *testing.T) {
	segments := BuildSegments(syntheticChapters("X", 2, 2), 2)
	start := time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)
	days := Distribute(segments, start, 2)
	if got := days[1].Date; !got.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected second date %s", got)
	}
}

func TestDistributeAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	segments := BuildSegments(syntheticChapters("X", 1, 1, 1, 1), 4)
	start := time.Date(2025, 3, 8, 12, 0, 0, 0, loc)
	days := Distribute(segments, start, 4)
	for i, day := range days {
		y, m, d := day.Date.Date()
		if y != 2025 || m != time.March || d != 8+i {
			t.Fatalf("day %d dated %s", i, day.Date)
		}
		if day.Date.Hour() != 0 {
			t.Fatalf("day %d not at midnight: %s", i, day.Date)
		}
	}
}
