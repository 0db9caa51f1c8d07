package logging

import (
	"context"
	"log/slog"
)

// MultiHandler forwards every record to each of its member handlers.
// Members filter by their own level; a failing member does not stop the
// others.
type MultiHandler []slog.Handler

// NewMultiHandler builds a MultiHandler from the non-nil handlers. Nil
// entries are dropped so callers can pass an optional file handler
// unconditionally.
func NewMultiHandler(handlers ...slog.Handler) MultiHandler {
	m := make(MultiHandler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

// Enabled reports whether any member accepts the level.
func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every member whose level accepts it.
func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

// WithAttrs applies the attributes to every member.
func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

// WithGroup applies the group to every member.
func (m MultiHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return m
	}
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}
