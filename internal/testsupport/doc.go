// Package testsupport builds bibleplan configurations and config files for
// tests.
package testsupport
