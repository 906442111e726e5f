package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bibleplan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig returns the repository defaults with opts applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithTestament sets plan.testament.
func WithTestament(value string) ConfigOption {
	return func(c *config.Config) { c.Plan.Testament = value }
}

// WithDays sets plan.days.
func WithDays(days int) ConfigOption {
	return func(c *config.Config) { c.Plan.Days = days }
}

// WithStartDate sets plan.start_date (YYYY-MM-DD).
func WithStartDate(value string) ConfigOption {
	return func(c *config.Config) { c.Plan.StartDate = value }
}

// WithLocale sets plan.locale.
func WithLocale(value string) ConfigOption {
	return func(c *config.Config) { c.Plan.Locale = value }
}

// WithOutputFormat sets output.format.
func WithOutputFormat(value string) ConfigOption {
	return func(c *config.Config) { c.Output.Format = value }
}

// WriteConfig encodes cfg as TOML into a fresh temp directory and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bibleplan.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
