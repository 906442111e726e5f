package schedule

import "bibleplan/internal/corpus"

// span tracks an explicit verse range while splitting; whole marks a
// chapter that has not been split yet.
type span struct {
	chapter corpus.ChapterInfo
	start   int
	end     int
	whole   bool
}

func (s span) size() int {
	return s.end - s.start + 1
}

func (s span) segment() Segment {
	seg := Segment{Book: s.chapter.Book, Chapter: s.chapter.Chapter}
	if !s.whole {
		seg.VerseStart = s.start
		seg.VerseEnd = s.end
	}
	return seg
}

// BuildSegments produces the ordered reading segments for the chapters.
//
// With at least targetCount chapters every chapter becomes one whole-chapter
// segment and the result may be longer than targetCount; Distribute groups
// them. With fewer chapters the largest segment (earliest on ties) is halved
// in place, first half floor(n/2) verses, until there are targetCount
// segments or nothing larger than one verse is left.
func BuildSegments(chapters []corpus.ChapterInfo, targetCount int) []Segment {
	if len(chapters) >= targetCount {
		segments := make([]Segment, len(chapters))
		for i, ch := range chapters {
			segments[i] = Segment{Book: ch.Book, Chapter: ch.Chapter}
		}
		return segments
	}
	if len(chapters) == 0 {
		return nil
	}

	verses := 0
	for _, ch := range chapters {
		verses += ch.VerseCount
	}
	// Splitting stops at one segment per verse.
	spans := make([]span, len(chapters), max(len(chapters), min(targetCount, verses)))
	for i, ch := range chapters {
		spans[i] = span{chapter: ch, start: 1, end: ch.VerseCount, whole: true}
	}

	for len(spans) < targetCount {
		largest := 0
		for i := 1; i < len(spans); i++ {
			if spans[i].size() > spans[largest].size() {
				largest = i
			}
		}
		target := spans[largest]
		if target.size() <= 1 {
			break
		}

		mid := target.size() / 2
		first := span{chapter: target.chapter, start: target.start, end: target.start + mid - 1}
		second := span{chapter: target.chapter, start: target.start + mid, end: target.end}

		spans = append(spans, span{})
		copy(spans[largest+2:], spans[largest+1:])
		spans[largest] = first
		spans[largest+1] = second
	}

	segments := make([]Segment, len(spans))
	for i, s := range spans {
		segments[i] = s.segment()
	}
	return segments
}
