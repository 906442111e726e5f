package main

import (
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bibleplan/internal/config"
	"bibleplan/internal/locale"
	"bibleplan/internal/planerr"
)

// outputFlags are shared by every command that prints a document.
type outputFlags struct {
	format string
	path   string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: auto, table, text, continuous, json")
	cmd.Flags().StringVarP(&f.path, "output", "o", "", "Write output to a file instead of stdout")
}

func (f *outputFlags) resolve(cfg *config.Config) (format string, path string, err error) {
	format = cfg.Output.Format
	if value := strings.ToLower(strings.TrimSpace(f.format)); value != "" {
		if !slices.Contains(config.OutputFormats, value) {
			return "", "", planerr.NewValidation("format", f.format, "expected one of "+strings.Join(config.OutputFormats, ", "))
		}
		format = value
	}
	path = cfg.Output.Path
	if value := strings.TrimSpace(f.path); value != "" {
		if path, err = config.ExpandPath(value); err != nil {
			return "", "", err
		}
	}
	return format, path, nil
}

// planFlags adds the calendar settings used by plan-producing commands.
type planFlags struct {
	outputFlags
	start  string
	locale string
}

func (f *planFlags) register(cmd *cobra.Command) {
	f.outputFlags.register(cmd)
	cmd.Flags().StringVar(&f.start, "start", "", "First day of the plan as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale for weekday and month names (ru, en)")
}

type planOptions struct {
	start  time.Time
	names  locale.Names
	format string
	path   string
}

func (f *planFlags) resolve(cfg *config.Config, now time.Time) (planOptions, error) {
	var opts planOptions
	var err error

	if value := strings.TrimSpace(f.start); value != "" {
		if opts.start, err = config.ParseDate(value, now.Location()); err != nil {
			return planOptions{}, planerr.NewValidation("start", value, "expected YYYY-MM-DD")
		}
	} else if opts.start, err = cfg.StartDate(now); err != nil {
		return planOptions{}, err
	}

	tag := cfg.Plan.Locale
	if value := strings.TrimSpace(f.locale); value != "" {
		tag = value
	}
	if opts.names, err = locale.Resolve(tag); err != nil {
		return planOptions{}, err
	}

	if opts.format, opts.path, err = f.outputFlags.resolve(cfg); err != nil {
		return planOptions{}, err
	}
	return opts, nil
}
