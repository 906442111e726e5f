package fixedplan

import (
	"errors"
	"fmt"

	"bibleplan/internal/corpus"
)

// Verify parses every label of the plan against its testament and returns
// the parsed references in order. All unparseable labels are reported
// together.
func Verify(plan Plan) ([]corpus.Reference, error) {
	refs := make([]corpus.Reference, 0, len(plan.Readings))
	var errs []error
	for i, label := range plan.Readings {
		ref, err := corpus.ParseReference(plan.Testament, label)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s day %d: %w", plan.ID, i+1, err))
			continue
		}
		refs = append(refs, ref)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return refs, nil
}
