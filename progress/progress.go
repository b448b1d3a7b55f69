// Package progress surfaces synthesis milestones to interactive
// callers. The engine logs ordinary structured records; any record
// carrying a "percent" attribute is also forwarded to a callback as a
// (percent, status) pair, so a UI can drive a progress bar without the
// engine knowing it exists.
package progress

import (
	"context"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// PercentKey is the attribute key a record must carry to count as a
// milestone.
const PercentKey = "percent"

// Func receives one milestone: a percentage in [0,100] and a short
// status line.
type Func func(percent int, status string)

// Handler is a slog.Handler that forwards milestone records to a Func
// and swallows everything else.
type Handler struct {
	fn Func
}

// NewHandler wraps fn as a slog.Handler. A nil fn yields a handler
// that reports nothing.
func NewHandler(fn Func) *Handler {
	return &Handler{fn: fn}
}

// Enabled reports whether the handler wants the record at all.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.fn != nil && level >= slog.LevelInfo
}

// Handle forwards the record's percent and message when present.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	if h.fn == nil {
		return nil
	}
	found := false
	percent := 0
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == PercentKey {
			percent = int(a.Value.Resolve().Int64())
			found = true
			return false
		}
		return true
	})
	if found {
		h.fn(percent, record.Message)
	}
	return nil
}

// WithAttrs returns h unchanged: milestone detection looks only at
// per-record attributes.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

// WithGroup returns h unchanged for the same reason.
func (h *Handler) WithGroup(_ string) slog.Handler { return h }

// NewLogger fans every record out to a text handler on w and to the
// milestone callback, so one logger serves both the terminal and a
// progress bar.
func NewLogger(w io.Writer, level slog.Leveler, fn Func) *slog.Logger {
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(text, NewHandler(fn)))
}
