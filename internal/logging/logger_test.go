package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bibleplan/internal/config"
	"bibleplan/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf, "run-1")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug message")
	logger.Info("plan generated", logging.String("testament", "new"), logging.Int("days", 365))

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Fatalf("debug line emitted at info level: %q", out)
	}
	if !strings.Contains(out, "INFO – plan generated") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "    - Testament: new") || !strings.Contains(out, "    - Days: 365") {
		t.Fatalf("missing highlighted fields: %q", out)
	}
	if strings.Contains(out, "run-1") {
		t.Fatalf("correlation id should be hidden on info lines: %q", out)
	}
	if !strings.Contains(out, "+ 1 more field hidden") {
		t.Fatalf("expected hidden field summary: %q", out)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(logger, "schedule").Warn("segments merged", logging.Int("segments", 12))

	out := buf.String()
	if !strings.Contains(out, "WARN [schedule] – segments merged") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "    - Segments: 12") {
		t.Fatalf("missing segments field: %q", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf, CorrelationID: "abc"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if record["msg"] != "json message" || record["level"] != "info" || record["k"] != "v" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key: %v", record)
	}
	if record[logging.FieldCorrelationID] != "abc" {
		t.Fatalf("expected correlation id, got %v", record[logging.FieldCorrelationID])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be disabled")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info should be enabled")
	}
}

func TestNewCorrelationIDIsUnique(t *testing.T) {
	a, b := logging.NewCorrelationID(), logging.NewCorrelationID()
	if a == "" || a == b {
		t.Fatalf("expected distinct ids, got %q and %q", a, b)
	}
}

func TestErrorWithContextFillsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.ErrorWithContext(logger, "command failed", "not_found", logging.Error(errors.New("boom")))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if record["level"] != "error" || record[logging.FieldEventType] != "not_found" {
		t.Fatalf("unexpected record: %v", record)
	}
	if record[logging.FieldErrorHint] != "check logs for details" || record["error"] != "boom" {
		t.Fatalf("missing defaults: %v", record)
	}
}

func TestErrorWithContextKeepsCallerHint(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.ErrorWithContext(logger, "command failed", "invalid_argument",
		logging.String(logging.FieldErrorHint, "run bibleplan plans"))

	out := buf.String()
	if !strings.Contains(out, "ERROR – command failed") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "    - Event: invalid_argument") || !strings.Contains(out, "    - Hint: run bibleplan plans") {
		t.Fatalf("missing fields: %q", out)
	}
	if strings.Count(out, "Hint:") != 1 {
		t.Fatalf("hint duplicated: %q", out)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should be disabled")
	}
}
