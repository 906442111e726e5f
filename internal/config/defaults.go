package config

import "bibleplan/internal/schedule"

const (
	defaultConfigPath = "~/.config/bibleplan/config.toml"
	projectConfigName = "bibleplan.toml"
	defaultTestament  = "new"
	defaultDays       = 365
	defaultLocale     = "ru"
	defaultOutput     = OutputAuto
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	// MaxDays bounds plan.days and the --days flag.
	MaxDays = schedule.MaxDays
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Plan: Plan{
			Testament: defaultTestament,
			Days:      defaultDays,
			Locale:    defaultLocale,
		},
		Output: Output{
			Format: defaultOutput,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
