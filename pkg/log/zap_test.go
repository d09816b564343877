package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := WithRequestID(context.Background(), "req-2")
	assert.NotPanics(t, func() {
		l.Debugf(ctx, "x=%d", 1)
		l.Info(ctx, "hello")
		l.Warnf(ctx, "warn %s", "y")
		l.Errorf(ctx, "err %v", assert.AnError)
	})
}
