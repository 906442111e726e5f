// Package corpus holds the static description of the two reading corpora.
//
// Each testament is an ordered list of books and each book an ordered list of
// per-chapter verse counts. The tables are package-level values built once at
// init and never mutated; every accessor hands out copies or read-only views,
// so the package is safe for concurrent use without locking.
//
// Canonical order (book, then chapter, then verse) is the order of the
// tables. Everything downstream (segment building, distribution, label
// parsing) relies on it.
package corpus
