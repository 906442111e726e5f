package logging

import (
	"context"
	"log/slog"
)

// correlationHandler wraps another handler to stamp every record with the
// run's correlation ID.
type correlationHandler struct {
	base slog.Handler
	id   string
}

func newCorrelationHandler(base slog.Handler, id string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &correlationHandler{base: base, id: id}
}

func (h *correlationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *correlationHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String(FieldCorrelationID, h.id))
	return h.base.Handle(ctx, record)
}

func (h *correlationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &correlationHandler{base: h.base.WithAttrs(attrs), id: h.id}
}

func (h *correlationHandler) WithGroup(name string) slog.Handler {
	return &correlationHandler{base: h.base.WithGroup(name), id: h.id}
}
