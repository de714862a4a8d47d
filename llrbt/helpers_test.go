package llrbt

import (
	"context"
	"log/slog"
)

// capturingHandler appends each log record's message to a shared slice,
// used by tests that assert on the engine's diagnostic output without
// parsing slog's text/JSON encodings.
type capturingHandler struct {
	messages *[]string
}

func (h capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h capturingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.messages = append(*h.messages, r.Message)
	return nil
}

func (h capturingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h capturingHandler) WithGroup(string) slog.Handler      { return h }

func newCapturingLogger(messages *[]string) *slog.Logger {
	return slog.New(capturingHandler{messages: messages})
}
