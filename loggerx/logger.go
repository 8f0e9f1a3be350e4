package loggerx

import (
	"context"
	"log/slog"

	slogctx "github.com/veqryn/slog-context"
	"github.com/vespry/x/errorx"
	"github.com/vespry/x/slogx"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type Logger struct {
	*slog.Logger
}

// NewLogger wraps the given handler, installing the provided context
// extractors so that context-carried values show up on every record.
func NewLogger(h slog.Handler, extractors ...slogctx.AttrExtractor) *Logger {
	prependers := append([]slogctx.AttrExtractor{slogctx.ExtractPrepended}, extractors...)
	handler := slogctx.NewHandler(h, &slogctx.HandlerOptions{
		Prependers: prependers,
		Appenders:  []slogctx.AttrExtractor{slogctx.ExtractAppended},
	})

	return &Logger{slog.New(handler)}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(slogx.ErrorAttr(err))}
}

func (l *Logger) WithStackTrace() *Logger {
	return l.WithFields(semconv.ExceptionStacktrace(errorx.GetStackTrace()))
}

func (l *Logger) Error(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelError, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelWarn, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelInfo, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelDebug, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) WithFields(kvs ...attribute.KeyValue) *Logger {
	lfs := slogx.NewLogFields(kvs...)
	// This is a workaround until we get a nice slog.WithAttrs method - See https://github.com/golang/go/issues/66937#issuecomment-2730350514
	return &Logger{l.Logger.With("", slog.GroupValue(lfs...))}
}
