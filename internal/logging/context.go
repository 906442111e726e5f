package logging

import "github.com/google/uuid"

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID is the standardized structured logging key for per-run correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldCommand names the CLI subcommand being executed.
	FieldCommand = "command"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
)

// NewCorrelationID returns a fresh identifier for one CLI invocation.
func NewCorrelationID() string {
	return uuid.NewString()
}
