package main

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"bibleplan/internal/planerr"
)

func TestFixedPlanJSON(t *testing.T) {
	out, _, err := runCLI(t, "fixed", "new-testament-fixed-year", "--start", "2025-01-01", "--format", "json")
	if err != nil {
		t.Fatalf("fixed: %v", err)
	}
	var doc planDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Plan != "new-testament-fixed-year" || len(doc.Days) != 366 {
		t.Fatalf("unexpected document: plan %q, %d days", doc.Plan, len(doc.Days))
	}
	fifth := doc.Days[4]
	if !slices.Equal(fifth.Readings, []string{"Мф.5:1–26"}) || fifth.Verses != 26 || fifth.Date != "2025-01-05" {
		t.Fatalf("unexpected fifth day: %+v", fifth)
	}
	if last := doc.Days[365]; last.Date != "2026-01-01" {
		t.Fatalf("unexpected last date: %s", last.Date)
	}
}

func TestFixedPlanRequiresID(t *testing.T) {
	if _, _, err := runCLI(t, "fixed"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestFixedPlanUnknown(t *testing.T) {
	_, stderr, err := runCLI(t, "fixed", "nope")
	if !errors.Is(err, planerr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	requireContains(t, stderr, "ERROR – command failed")
	requireContains(t, stderr, "    - Event: not_found")
	requireContains(t, stderr, "    - Hint: run bibleplan plans to list plan ids")
}

func TestPresetText(t *testing.T) {
	out, _, err := runCLI(t, "preset", "new-testament-chapter-a-day", "--start", "2025-01-01", "--format", "text")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	lines := nonEmptyLines(out)
	if len(lines) != 260 || lines[0] != "ср, 1 январь — Мф.1" {
		t.Fatalf("unexpected preset output: %d lines", len(lines))
	}
}

func TestPresetUnknown(t *testing.T) {
	_, _, err := runCLI(t, "preset", "nope")
	if !errors.Is(err, planerr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlansListing(t *testing.T) {
	out, _, err := runCLI(t, "plans", "--format", "json")
	if err != nil {
		t.Fatalf("plans: %v", err)
	}
	var summaries []planSummary
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(summaries))
	}
	if summaries[0].ID != "new-testament-fixed-year" || summaries[0].Kind != "fixed" || summaries[0].Days != 366 {
		t.Fatalf("unexpected fixed entry: %+v", summaries[0])
	}
	if summaries[0].Verses != 7957 || summaries[0].TestamentVerses != 7957 {
		t.Fatalf("fixed plan should cover the whole testament: %+v", summaries[0])
	}
	for _, s := range summaries[1:] {
		if s.Verses != s.TestamentVerses || s.Verses == 0 {
			t.Fatalf("preset %s: coverage %d/%d", s.ID, s.Verses, s.TestamentVerses)
		}
	}

	out, _, err = runCLI(t, "plans", "--format", "table")
	if err != nil {
		t.Fatalf("plans table: %v", err)
	}
	requireContains(t, out, "old-testament-year")
	requireContains(t, out, "preset")
	requireContains(t, out, "VERSES")
	requireContains(t, out, "7957/7957")
	requireContains(t, out, "23145/23145")
}

func TestCorpusStats(t *testing.T) {
	out, _, err := runCLI(t, "corpus", "--testament", "old", "--format", "json")
	if err != nil {
		t.Fatalf("corpus: %v", err)
	}
	var doc corpusDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Totals != (totalsRecord{Books: 39, Chapters: 929, Verses: 23145}) {
		t.Fatalf("unexpected totals: %+v", doc.Totals)
	}
	if doc.Books[0].Abbreviation != "Быт." || doc.Books[0].Chapters != 50 {
		t.Fatalf("unexpected first book: %+v", doc.Books[0])
	}

	out, _, err = runCLI(t, "corpus", "--format", "text")
	if err != nil {
		t.Fatalf("corpus text: %v", err)
	}
	requireContains(t, out, "Новый Завет: 27 books, 260 chapters, 7957 verses")
}
