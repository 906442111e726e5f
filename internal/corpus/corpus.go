package corpus

import (
	"fmt"

	"bibleplan/internal/planerr"
)

// Book is one book of a corpus. The verse table is unexported so the static
// data cannot be altered through a returned value.
type Book struct {
	Name         string
	Abbreviation string

	versesByChapter []int
}

func book(name, abbreviation string, versesByChapter []int) Book {
	return Book{Name: name, Abbreviation: abbreviation, versesByChapter: versesByChapter}
}

// ChapterCount returns the number of chapters in the book.
func (b Book) ChapterCount() int {
	return len(b.versesByChapter)
}

// Verses returns the verse count of the 1-based chapter, or 0 when the
// chapter does not exist.
func (b Book) Verses(chapter int) int {
	if chapter < 1 || chapter > len(b.versesByChapter) {
		return 0
	}
	return b.versesByChapter[chapter-1]
}

// TotalVerses sums the verse counts of every chapter.
func (b Book) TotalVerses() int {
	total := 0
	for _, n := range b.versesByChapter {
		total += n
	}
	return total
}

// ChapterInfo is one chapter of a flattened corpus.
type ChapterInfo struct {
	Book       Book
	Chapter    int
	VerseCount int
}

// Totals summarises a corpus.
type Totals struct {
	Books    int
	Chapters int
	Verses   int
}

var abbreviationIndex map[Testament]map[string]int

func init() {
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("corpus tables: %v", err))
	}
	abbreviationIndex = make(map[Testament]map[string]int, 2)
	for _, t := range Testaments() {
		table := tableFor(t)
		idx := make(map[string]int, len(table))
		for i, b := range table {
			idx[b.Abbreviation] = i
		}
		abbreviationIndex[t] = idx
	}
}

func tableFor(t Testament) []Book {
	switch t {
	case New:
		return newTestament
	case Old:
		return oldTestament
	default:
		return nil
	}
}

// Books returns the books of the testament in canonical order.
func Books(t Testament) ([]Book, error) {
	table := tableFor(t)
	if table == nil {
		return nil, planerr.NewValidation("testament", string(t), `expected "new" or "old"`)
	}
	out := make([]Book, len(table))
	copy(out, table)
	return out, nil
}

// Chapters flattens the testament into one entry per chapter in canonical order.
func Chapters(t Testament) ([]ChapterInfo, error) {
	books, err := Books(t)
	if err != nil {
		return nil, err
	}
	var chapters []ChapterInfo
	for _, b := range books {
		for i, verses := range b.versesByChapter {
			chapters = append(chapters, ChapterInfo{Book: b, Chapter: i + 1, VerseCount: verses})
		}
	}
	return chapters, nil
}

// Stats counts books, chapters and verses of the testament.
func Stats(t Testament) (Totals, error) {
	books, err := Books(t)
	if err != nil {
		return Totals{}, err
	}
	totals := Totals{Books: len(books)}
	for _, b := range books {
		totals.Chapters += b.ChapterCount()
		totals.Verses += b.TotalVerses()
	}
	return totals, nil
}

// BookByAbbreviation finds a book of the testament by its exact abbreviation.
func BookByAbbreviation(t Testament, abbreviation string) (Book, bool) {
	idx, ok := abbreviationIndex[t][abbreviation]
	if !ok {
		return Book{}, false
	}
	return tableFor(t)[idx], true
}
