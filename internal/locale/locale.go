// Package locale resolves BCP 47 / POSIX locale names to the date names used
// by the plan formatter.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"bibleplan/internal/planerr"
)

// Names holds abbreviated weekday and standalone month names for one language.
type Names struct {
	tag      language.Tag
	weekdays [7]string
	months   [12]string
}

// Tag returns the language the names belong to.
func (n Names) Tag() language.Tag {
	return n.tag
}

// ShortWeekday returns the two-letter weekday abbreviation.
func (n Names) ShortWeekday(w time.Weekday) string {
	return n.weekdays[w]
}

// Month returns the standalone (nominative) month name.
func (n Names) Month(m time.Month) string {
	return n.months[m-1]
}

var (
	Russian = Names{
		tag:      language.Russian,
		weekdays: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		months: [12]string{
			"январь", "февраль", "март", "апрель", "май", "июнь",
			"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
		},
	}
	English = Names{
		tag:      language.English,
		weekdays: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	}
)

// Default is used when no locale is requested.
var Default = Russian

var (
	supported = []Names{Russian, English}
	matcher   = language.NewMatcher([]language.Tag{language.Russian, language.English})
)

// Resolve maps a locale name such as "ru", "en-GB" or "ru_RU.UTF-8" to the
// closest supported Names. An empty value yields Default.
func Resolve(value string) (Names, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Default, nil
	}
	tag, err := language.Parse(posixToBCP47(trimmed))
	if err != nil {
		return Names{}, planerr.NewValidation("locale", value, "not a recognizable language tag")
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Names{}, planerr.NewValidation("locale", value, "supported locales are ru and en")
	}
	return supported[idx], nil
}

// posixToBCP47 turns "ru_RU.UTF-8@euro" into "ru-RU".
func posixToBCP47(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	return strings.ReplaceAll(value, "_", "-")
}
