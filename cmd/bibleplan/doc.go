// Package main hosts the bibleplan CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into calls against
// the schedule, fixedplan and corpus packages, then renders the result as a
// table, plain text, a single continuous string, or JSON. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on presentation.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it through dedicated commands or flags here.
package main
