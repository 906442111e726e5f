package corpus

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"bibleplan/internal/planerr"
)

// Reference is a contiguous passage inside one chapter. A zero VerseStart
// means the whole chapter.
type Reference struct {
	Book       Book
	Chapter    int
	VerseStart int
	VerseEnd   int
}

// Whole reports whether the reference spans the entire chapter.
func (r Reference) Whole() bool {
	return r.VerseStart == 0
}

// VerseCount returns the number of verses covered.
func (r Reference) VerseCount() int {
	if r.Whole() {
		return r.Book.Verses(r.Chapter)
	}
	return r.VerseEnd - r.VerseStart + 1
}

// Label renders "{abbreviation}{chapter}" or
// "{abbreviation}{chapter}:{start}–{end}" with an en dash.
func (r Reference) Label() string {
	var b strings.Builder
	b.WriteString(r.Book.Abbreviation)
	b.WriteString(strconv.Itoa(r.Chapter))
	if !r.Whole() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(r.VerseStart))
		b.WriteRune('–')
		b.WriteString(strconv.Itoa(r.VerseEnd))
	}
	return b.String()
}

// ParseReference parses a reading label back into a Reference within the
// testament. It accepts the labels produced by Label plus the forms used by
// hand-authored plans: any Unicode dash between verses, and a bare
// abbreviation ("Флм.") for single-chapter books.
func ParseReference(t Testament, label string) (Reference, error) {
	if !t.Valid() {
		return Reference{}, planerr.NewValidation("testament", string(t), `expected "new" or "old"`)
	}
	text := norm.NFC.String(strings.TrimSpace(label))
	if text == "" {
		return Reference{}, planerr.NewValidation("reference", label, "empty label")
	}

	b, ok := longestBookPrefix(t, text)
	if !ok {
		return Reference{}, planerr.NewValidation("reference", label, "unknown book")
	}
	rest := text[len(b.Abbreviation):]
	if rest == "" {
		if b.ChapterCount() != 1 {
			return Reference{}, planerr.NewValidation("reference", label, "chapter number required")
		}
		return Reference{Book: b, Chapter: 1}, nil
	}

	chapterPart, versePart, hasVerses := strings.Cut(rest, ":")
	chapter, err := strconv.Atoi(chapterPart)
	if err != nil || chapter < 1 || chapter > b.ChapterCount() {
		return Reference{}, planerr.NewValidation("reference", label, "chapter out of range")
	}
	ref := Reference{Book: b, Chapter: chapter}
	if !hasVerses {
		return ref, nil
	}

	startPart, endPart, ok := cutDash(versePart)
	if !ok {
		return Reference{}, planerr.NewValidation("reference", label, "verse range must be start–end")
	}
	start, err1 := strconv.Atoi(startPart)
	end, err2 := strconv.Atoi(endPart)
	if err1 != nil || err2 != nil || start < 1 || start > end || end > b.Verses(chapter) {
		return Reference{}, planerr.NewValidation("reference", label, "verse range out of bounds")
	}
	ref.VerseStart = start
	ref.VerseEnd = end
	return ref, nil
}

func longestBookPrefix(t Testament, text string) (Book, bool) {
	var best Book
	found := false
	for _, b := range tableFor(t) {
		if strings.HasPrefix(text, b.Abbreviation) && len(b.Abbreviation) > len(best.Abbreviation) {
			best = b
			found = true
		}
	}
	return best, found
}

func cutDash(s string) (string, string, bool) {
	for i, r := range s {
		if unicode.Is(unicode.Pd, r) {
			return s[:i], s[i+utf8.RuneLen(r):], true
		}
	}
	return "", "", false
}
