package fixedplan

import (
	"strings"

	"bibleplan/internal/corpus"
	"bibleplan/internal/planerr"
)

// Preset is a named testament and day count for the adaptive generator.
type Preset struct {
	ID          string
	Name        string
	Description string
	Testament   corpus.Testament
	Days        int
}

var presets = []Preset{
	{
		ID:          "new-testament-year",
		Name:        "Новый Завет за год",
		Description: "Весь Новый Завет за 365 дней, длинные главы делятся пополам.",
		Testament:   corpus.New,
		Days:        365,
	},
	{
		ID:          "new-testament-chapter-a-day",
		Name:        "Новый Завет: глава в день",
		Description: "Одна целая глава Нового Завета в день, 260 дней.",
		Testament:   corpus.New,
		Days:        260,
	},
	{
		ID:          "old-testament-year",
		Name:        "Ветхий Завет за год",
		Description: "Весь Ветхий Завет за 365 дней, по две-три главы в день.",
		Testament:   corpus.Old,
		Days:        365,
	},
}

// Presets returns the registered presets in registry order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset returns the preset with the given id.
func LookupPreset(id string) (Preset, error) {
	key := strings.TrimSpace(id)
	for _, p := range presets {
		if p.ID == key {
			return p, nil
		}
	}
	return Preset{}, planerr.NewNotFound("preset", id)
}
