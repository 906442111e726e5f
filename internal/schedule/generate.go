package schedule

import (
	"strconv"
	"time"

	"bibleplan/internal/corpus"
	"bibleplan/internal/fixedplan"
	"bibleplan/internal/planerr"
)

// MaxDays is the longest plan Generate accepts. It stays below the verse
// count of either testament, so every requested day receives a reading.
const MaxDays = 999

// Generate builds an adaptive plan covering the whole testament in
// targetDays days. An unknown testament or a day count outside 1..MaxDays is
// rejected with planerr.ErrInvalidArgument before any work is done.
func Generate(testament corpus.Testament, start time.Time, targetDays int) ([]Day, error) {
	if targetDays <= 0 {
		return nil, planerr.NewValidation("days", strconv.Itoa(targetDays), "must be a positive number of days")
	}
	if targetDays > MaxDays {
		return nil, planerr.NewValidation("days", strconv.Itoa(targetDays), "must be at most "+strconv.Itoa(MaxDays))
	}
	chapters, err := corpus.Chapters(testament)
	if err != nil {
		return nil, err
	}
	segments := BuildSegments(chapters, targetDays)
	return Distribute(segments, start, targetDays), nil
}

// GenerateFixed dates the readings of a fixed plan.
func GenerateFixed(plan fixedplan.Plan, start time.Time) []Day {
	return ApplyFixed(plan, start)
}

// GenerateFixedByID looks up a registered fixed plan and dates it.
// Unknown ids fail with planerr.ErrNotFound.
func GenerateFixedByID(id string, start time.Time) ([]Day, error) {
	plan, err := fixedplan.Lookup(id)
	if err != nil {
		return nil, err
	}
	return ApplyFixed(plan, start), nil
}

// GeneratePreset runs Generate with the testament and length of a preset.
func GeneratePreset(preset fixedplan.Preset, start time.Time) ([]Day, error) {
	return Generate(preset.Testament, start, preset.Days)
}

// GeneratePresetByID looks up a registered preset and generates it.
func GeneratePresetByID(id string, start time.Time) ([]Day, error) {
	preset, err := fixedplan.LookupPreset(id)
	if err != nil {
		return nil, err
	}
	return GeneratePreset(preset, start)
}
