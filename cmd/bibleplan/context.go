package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"bibleplan/internal/config"
	"bibleplan/internal/logging"
	"bibleplan/internal/planerr"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	logger        *slog.Logger
	correlationID string

	now func() time.Time
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		correlationID: logging.NewCorrelationID(),
		now:           time.Now,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// initLogger builds the run logger on the command's stderr.
func (c *commandContext) initLogger(cmd *cobra.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	effective := *cfg
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		effective.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
	}
	logger, err := logging.NewFromConfig(&effective, cmd.ErrOrStderr(), c.correlationID)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.logger = logger.With(logging.String(logging.FieldCommand, cmd.Name()))
	c.logger.Debug("configuration loaded", logging.String("config_path", c.configPath))
	return nil
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// logFailures wraps every RunE below cmd so a failing command leaves a
// classified error line in the run log before cobra returns the error.
func (c *commandContext) logFailures(cmd *cobra.Command) {
	for _, child := range cmd.Commands() {
		c.logFailures(child)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			eventType, hint := classifyFailure(err)
			logging.ErrorWithContext(c.log(), "command failed", eventType,
				logging.Error(err),
				logging.String(logging.FieldErrorHint, hint))
		}
		return err
	}
}

func classifyFailure(err error) (string, string) {
	switch {
	case errors.Is(err, planerr.ErrNotFound):
		return "not_found", "run bibleplan plans to list plan ids"
	case errors.Is(err, planerr.ErrInvalidArgument):
		return "invalid_argument", "check flag and configuration values"
	default:
		return "command_failed", "check logs for details"
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
