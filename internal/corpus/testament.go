package corpus

import (
	"strings"

	"bibleplan/internal/planerr"
)

// Testament selects one of the two corpora.
type Testament string

const (
	New Testament = "new"
	Old Testament = "old"
)

// Testaments lists the supported corpora in display order.
func Testaments() []Testament {
	return []Testament{New, Old}
}

// Valid reports whether t names a known corpus.
func (t Testament) Valid() bool {
	return t == New || t == Old
}

// DisplayName returns the human-readable corpus title.
func (t Testament) DisplayName() string {
	switch t {
	case New:
		return "Новый Завет"
	case Old:
		return "Ветхий Завет"
	default:
		return string(t)
	}
}

// ParseTestament accepts "new"/"old" (case-insensitive, surrounding space ignored)
// along with the short forms "nt"/"ot".
func ParseTestament(value string) (Testament, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "new", "nt":
		return New, nil
	case "old", "ot":
		return Old, nil
	default:
		return "", planerr.NewValidation("testament", value, `expected "new" or "old"`)
	}
}
