package fixedplan_test

import (
	"errors"
	"testing"

	"bibleplan/internal/corpus"
	"bibleplan/internal/fixedplan"
	"bibleplan/internal/planerr"
)

const newTestamentFixedYearID = "new-testament-fixed-year"

func TestLookupBuiltinPlan(t *testing.T) {
	plan, err := fixedplan.Lookup(newTestamentFixedYearID)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if plan.Testament != corpus.New {
		t.Fatalf("unexpected testament %q", plan.Testament)
	}
	if len(plan.Readings) != 366 {
		t.Fatalf("expected 366 readings, got %d", len(plan.Readings))
	}
	if plan.Readings[0] != "Мф.1" || plan.Readings[len(plan.Readings)-1] != "Откр.22" {
		t.Fatalf("unexpected plan bounds %q .. %q", plan.Readings[0], plan.Readings[len(plan.Readings)-1])
	}
}

func TestLookupUnknownPlan(t *testing.T) {
	_, err := fixedplan.Lookup("psalms-in-a-month")
	if !errors.Is(err, planerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *planerr.NotFoundError
	if !errors.As(err, &nf) || nf.ID != "psalms-in-a-month" {
		t.Fatalf("expected NotFoundError carrying the id, got %#v", nf)
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	plans := fixedplan.All()
	if len(plans) == 0 {
		t.Fatal("expected at least one fixed plan")
	}
	plans[0].Readings[0] = "changed"
	again, _ := fixedplan.Lookup(plans[0].ID)
	if again.Readings[0] != "Мф.1" {
		t.Fatalf("registry mutated through All(): %q", again.Readings[0])
	}

	presets := fixedplan.Presets()
	presets[0].Days = -1
	if fixedplan.Presets()[0].Days <= 0 {
		t.Fatal("preset registry mutated through Presets()")
	}
}

func TestVerifyBuiltinPlanCoversNewTestamentOnce(t *testing.T) {
	plan, _ := fixedplan.Lookup(newTestamentFixedYearID)
	refs, err := fixedplan.Verify(plan)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(refs) != len(plan.Readings) {
		t.Fatalf("expected %d references, got %d", len(plan.Readings), len(refs))
	}

	type verse struct {
		book    string
		chapter int
		verse   int
	}
	seen := make(map[verse]bool)
	for _, ref := range refs {
		first, last := ref.VerseStart, ref.VerseEnd
		if ref.Whole() {
			first, last = 1, ref.Book.Verses(ref.Chapter)
		}
		for v := first; v <= last; v++ {
			key := verse{ref.Book.Abbreviation, ref.Chapter, v}
			if seen[key] {
				t.Fatalf("verse %s%d:%d read twice", key.book, key.chapter, key.verse)
			}
			seen[key] = true
		}
	}
	totals, _ := corpus.Stats(corpus.New)
	if len(seen) != totals.Verses {
		t.Fatalf("plan covers %d verses, want %d", len(seen), totals.Verses)
	}
}

func TestVerifyReportsBadLabels(t *testing.T) {
	plan := fixedplan.Plan{
		ID:        "broken",
		Testament: corpus.New,
		Readings:  []string{"Мф.1", "Мф.99", "Быт.1"},
	}
	_, err := fixedplan.Verify(plan)
	if !errors.Is(err, planerr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range fixedplan.Presets() {
		if !p.Testament.Valid() {
			t.Fatalf("preset %s: invalid testament %q", p.ID, p.Testament)
		}
		if p.Days < 1 || p.Days > 999 {
			t.Fatalf("preset %s: days %d outside 1..999", p.ID, p.Days)
		}
		got, err := fixedplan.LookupPreset(p.ID)
		if err != nil || got != p {
			t.Fatalf("LookupPreset(%s) = %+v, %v", p.ID, got, err)
		}
	}
	if _, err := fixedplan.LookupPreset("nope"); !errors.Is(err, planerr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
