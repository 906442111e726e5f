package locale

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"

	"bibleplan/internal/planerr"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.Russian},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"ru_RU.UTF-8", language.Russian},
		{"en", language.English},
		{"en-GB", language.English},
		{"en_US.UTF-8@latin", language.English},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.in)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.in, err)
		}
		if got.Tag() != tt.want {
			t.Fatalf("Resolve(%q) = %s, want %s", tt.in, got.Tag(), tt.want)
		}
	}
}

func TestResolveRejects(t *testing.T) {
	for _, in := range []string{"ja", "not a locale!"} {
		if _, err := Resolve(in); !errors.Is(err, planerr.ErrInvalidArgument) {
			t.Fatalf("Resolve(%q): expected invalid argument, got %v", in, err)
		}
	}
}

func TestNames(t *testing.T) {
	if got := Russian.ShortWeekday(time.Wednesday); got != "ср" {
		t.Fatalf("Russian Wednesday = %q", got)
	}
	if got := Russian.Month(time.October); got != "октябрь" {
		t.Fatalf("Russian October = %q", got)
	}
	if got := English.ShortWeekday(time.Sunday); got != "Su" {
		t.Fatalf("English Sunday = %q", got)
	}
	if got := English.Month(time.December); got != "December" {
		t.Fatalf("English December = %q", got)
	}
}
