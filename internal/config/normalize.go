package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizePlan()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePlan() {
	c.Plan.Testament = strings.ToLower(strings.TrimSpace(c.Plan.Testament))
	if c.Plan.Testament == "" {
		c.Plan.Testament = defaultTestament
	}
	c.Plan.StartDate = strings.TrimSpace(c.Plan.StartDate)
	c.Plan.Locale = strings.TrimSpace(c.Plan.Locale)
	if c.Plan.Locale == "" {
		if value, ok := os.LookupEnv("BIBLEPLAN_LOCALE"); ok {
			c.Plan.Locale = strings.TrimSpace(value)
		}
	}
	if c.Plan.Locale == "" {
		c.Plan.Locale = defaultLocale
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutput
	}
	var err error
	if c.Output.Path, err = expandPath(strings.TrimSpace(c.Output.Path)); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
