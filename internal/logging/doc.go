// Package logging assembles structured slog loggers for bibleplan.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and stamps every record with the invocation's correlation ID so
// lines from one run can be grouped. Logs go to stderr by default; stdout is
// reserved for rendered plans. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
