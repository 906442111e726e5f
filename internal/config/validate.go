package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"bibleplan/internal/corpus"
	"bibleplan/internal/locale"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlan(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePlan() error {
	if _, err := corpus.ParseTestament(c.Plan.Testament); err != nil {
		return fmt.Errorf("plan.testament: %w", err)
	}
	if c.Plan.Days < 1 || c.Plan.Days > MaxDays {
		return fmt.Errorf("plan.days must be between 1 and %d, got %d", MaxDays, c.Plan.Days)
	}
	if c.Plan.StartDate != "" {
		if _, err := ParseDate(c.Plan.StartDate, time.UTC); err != nil {
			return fmt.Errorf("plan.start_date: %w", err)
		}
	}
	if _, err := locale.Resolve(c.Plan.Locale); err != nil {
		return fmt.Errorf("plan.locale: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(OutputFormats, ", "), c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be one of console, json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
}
