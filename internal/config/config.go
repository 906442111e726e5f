package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"bibleplan/internal/corpus"
	"bibleplan/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// DateLayout is the on-disk and command-line format for calendar dates.
const DateLayout = "2006-01-02"

// Output format names.
const (
	OutputAuto       = "auto"
	OutputTable      = "table"
	OutputText       = "text"
	OutputContinuous = "continuous"
	OutputJSON       = "json"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{OutputAuto, OutputTable, OutputText, OutputContinuous, OutputJSON}

// Plan contains the default generator inputs.
type Plan struct {
	Testament string `toml:"testament"`
	Days      int    `toml:"days"`
	StartDate string `toml:"start_date"`
	Locale    string `toml:"locale"`
}

// Output contains rendering settings.
type Output struct {
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for bibleplan.
type Config struct {
	Plan    Plan    `toml:"plan"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned
// config has paths expanded and enumerations lower-cased.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Testament returns the configured corpus. Only meaningful on a validated config.
func (c *Config) Testament() corpus.Testament {
	t, _ := corpus.ParseTestament(c.Plan.Testament)
	return t
}

// StartDate returns the configured start date, or the calendar date of now
// when plan.start_date is empty.
func (c *Config) StartDate(now time.Time) (time.Time, error) {
	if c.Plan.StartDate == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	return ParseDate(c.Plan.StartDate, now.Location())
}

// ParseDate parses a YYYY-MM-DD value in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is only replaced when overwrite is set; otherwise the
// returned error wraps os.ErrExist.
func CreateSample(path string, overwrite bool) error {
	if err := fileutil.CreateExclusive(path, []byte(sampleConfig), overwrite); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
