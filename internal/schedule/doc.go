// Package schedule turns a corpus into a dated day-by-day reading plan.
//
// Generation runs in two passes. BuildSegments starts from one segment per
// chapter and, when there are fewer chapters than requested days, keeps
// halving the largest segment until the counts match. Distribute then walks
// the segments with a fractional cursor and assigns each one to exactly one
// calendar day. Fixed plans skip both passes: ApplyFixed dates a literal label
// list one entry per day.
//
// All functions are pure: they allocate fresh results on every call and keep
// no state between calls.
package schedule
