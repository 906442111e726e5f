package corpus

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the static tables: every book is named, abbreviated,
// has at least one chapter, every chapter has at least one verse, and
// abbreviations are unique across both testaments.
func Validate() error {
	var errs []error
	seen := make(map[string]Testament)
	for _, t := range Testaments() {
		table := tableFor(t)
		if len(table) == 0 {
			errs = append(errs, fmt.Errorf("%s: no books", t))
			continue
		}
		for i, b := range table {
			if strings.TrimSpace(b.Name) == "" {
				errs = append(errs, fmt.Errorf("%s book %d: empty name", t, i+1))
			}
			if strings.TrimSpace(b.Abbreviation) == "" {
				errs = append(errs, fmt.Errorf("%s book %d: empty abbreviation", t, i+1))
			} else if prev, dup := seen[b.Abbreviation]; dup {
				errs = append(errs, fmt.Errorf("%s book %q: abbreviation already used in %s", t, b.Abbreviation, prev))
			} else {
				seen[b.Abbreviation] = t
			}
			if len(b.versesByChapter) == 0 {
				errs = append(errs, fmt.Errorf("%s book %q: no chapters", t, b.Abbreviation))
			}
			for ch, n := range b.versesByChapter {
				if n < 1 {
					errs = append(errs, fmt.Errorf("%s book %q chapter %d: verse count %d", t, b.Abbreviation, ch+1, n))
				}
			}
		}
	}
	return errors.Join(errs...)
}
