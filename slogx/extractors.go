package slogx

import (
	"context"
	"log/slog"
	"time"

	slogctx "github.com/veqryn/slog-context"
)

// NewValueExtractor returns an extractor that stamps the value stored under
// contextKey onto every log record, under fieldKey. Records without the value
// are left untouched.
func NewValueExtractor(contextKey any, fieldKey string) slogctx.AttrExtractor {
	return func(ctx context.Context, recordT time.Time, recordLvl slog.Level, recordMsg string) []slog.Attr {
		defer func() {
			// Nullify panic to prevent having this hook break a caller
			recover()
		}()

		value := ctx.Value(contextKey)
		if value == nil {
			return nil
		}
		return []slog.Attr{slog.Any(fieldKey, value)}
	}
}
