package corpus_test

import (
	"errors"
	"testing"

	"bibleplan/internal/corpus"
	"bibleplan/internal/planerr"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name      string
		testament corpus.Testament
		label     string
		abbr      string
		chapter   int
		start     int
		end       int
		verses    int
	}{
		{"whole chapter", corpus.New, "Мф.1", "Мф.", 1, 0, 0, 25},
		{"en dash range", corpus.New, "Мф.5:1–26", "Мф.", 5, 1, 26, 26},
		{"non-breaking hyphen range", corpus.New, "Мф.21:23‑46", "Мф.", 21, 23, 46, 24},
		{"ascii hyphen range", corpus.New, "Евр.10:24-39", "Евр.", 10, 24, 39, 16},
		{"bare single-chapter book", corpus.New, "Флм.", "Флм.", 1, 0, 0, 25},
		{"numbered book", corpus.New, "1Фес.3", "1Фес.", 3, 0, 0, 13},
		{"undotted abbreviation", corpus.Old, "Руфь1", "Руфь", 1, 0, 0, 22},
		{"prefix collision", corpus.Old, "Иона4", "Иона", 4, 0, 0, 11},
		{"surrounding space", corpus.New, "  Откр.22 ", "Откр.", 22, 0, 0, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := corpus.ParseReference(tt.testament, tt.label)
			if err != nil {
				t.Fatalf("ParseReference(%q): %v", tt.label, err)
			}
			if ref.Book.Abbreviation != tt.abbr || ref.Chapter != tt.chapter || ref.VerseStart != tt.start || ref.VerseEnd != tt.end {
				t.Fatalf("ParseReference(%q) = %s %d:%d-%d", tt.label, ref.Book.Abbreviation, ref.Chapter, ref.VerseStart, ref.VerseEnd)
			}
			if got := ref.VerseCount(); got != tt.verses {
				t.Fatalf("VerseCount = %d, want %d", got, tt.verses)
			}
		})
	}
}

func TestParseReferenceRejects(t *testing.T) {
	tests := []struct {
		testament corpus.Testament
		label     string
	}{
		{corpus.New, ""},
		{corpus.New, "Мф."},
		{corpus.New, "Мф.29"},
		{corpus.New, "Мф.0"},
		{corpus.New, "Мф.5:27–49"},
		{corpus.New, "Мф.5:10–5"},
		{corpus.New, "Мф.5:10"},
		{corpus.New, "Быт.1"},
		{corpus.Old, "Xx.1"},
		{corpus.Testament("x"), "Мф.1"},
	}
	for _, tt := range tests {
		if _, err := corpus.ParseReference(tt.testament, tt.label); !errors.Is(err, planerr.ErrInvalidArgument) {
			t.Fatalf("ParseReference(%s, %q): expected invalid argument, got %v", tt.testament, tt.label, err)
		}
	}
}

func TestReferenceLabelRoundTrip(t *testing.T) {
	for _, label := range []string{"Мф.1", "Лк.1:41–80", "Откр.22", "2Ин.1"} {
		ref, err := corpus.ParseReference(corpus.New, label)
		if err != nil {
			t.Fatalf("ParseReference(%q): %v", label, err)
		}
		if got := ref.Label(); got != label {
			t.Fatalf("Label() = %q, want %q", got, label)
		}
	}
}
