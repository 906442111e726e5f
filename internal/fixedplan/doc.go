// Package fixedplan is the static registry of pre-authored reading plans.
//
// A fixed plan is a literal list of reading labels, one per day, dated by
// schedule.ApplyFixed without any splitting. A preset names a testament and a
// day count that schedule.Generate turns into an adaptive plan. Both
// registries are immutable; lookups return copies.
package fixedplan
