package schedule

import "bibleplan/internal/corpus"

// Segment is one contiguous reading unit: a whole chapter when VerseStart is
// zero, otherwise the verses VerseStart..VerseEnd of the chapter.
type Segment struct {
	Book       corpus.Book
	Chapter    int
	VerseStart int
	VerseEnd   int
}

// Whole reports whether the segment covers its entire chapter.
func (s Segment) Whole() bool {
	return s.VerseStart == 0
}

// Reference converts the segment into a corpus reference.
func (s Segment) Reference() corpus.Reference {
	return corpus.Reference{Book: s.Book, Chapter: s.Chapter, VerseStart: s.VerseStart, VerseEnd: s.VerseEnd}
}

// VerseCount returns the number of verses in the segment.
func (s Segment) VerseCount() int {
	return s.Reference().VerseCount()
}

// Label renders the display form used in reading days.
func (s Segment) Label() string {
	return s.Reference().Label()
}
