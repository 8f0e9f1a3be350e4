package loggerxtest

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/vespry/x/loggerx"
)

func NewTestLogger(t testing.TB) *loggerx.Logger {
	t.Helper()
	return &loggerx.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func NewTestLoggerWithJSONBuffer(t testing.TB) (*loggerx.Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	l := slog.New(slog.NewJSONHandler(buf, nil))
	return &loggerx.Logger{Logger: l}, buf
}
