package fixedplan

import (
	"strings"

	"bibleplan/internal/corpus"
	"bibleplan/internal/planerr"
)

// Plan is a pre-authored schedule with one literal reading label per day.
type Plan struct {
	ID          string
	Name        string
	Description string
	Testament   corpus.Testament
	Readings    []string
}

// All returns every registered fixed plan in registry order.
func All() []Plan {
	out := make([]Plan, len(fixedPlans))
	for i, p := range fixedPlans {
		out[i] = p.clone()
	}
	return out
}

// Lookup returns the fixed plan with the given id.
func Lookup(id string) (Plan, error) {
	key := strings.TrimSpace(id)
	for _, p := range fixedPlans {
		if p.ID == key {
			return p.clone(), nil
		}
	}
	return Plan{}, planerr.NewNotFound("fixed plan", id)
}

func (p Plan) clone() Plan {
	p.Readings = append([]string(nil), p.Readings...)
	return p
}
