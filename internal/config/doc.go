// Package config loads, normalizes, and validates bibleplan configuration.
//
// It supplies defaults for the plan generator (testament, day count, start
// date, locale), output rendering, and logging; reads TOML files; and honours
// the BIBLEPLAN_LOCALE environment fallback. Command-line flags override the
// loaded values in cmd/bibleplan.
package config
