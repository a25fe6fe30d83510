// Package logger provides a zap-based structured application logger.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level aliases the zap levels accepted by New.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFn extracts a trace id from the context for log correlation.
type TraceIDFn func(ctx context.Context) string

// Logger writes structured, leveled JSON records.
type Logger struct {
	sl        *zap.SugaredLogger
	traceIDFn TraceIDFn
}

// New constructs a Logger writing JSON to w at minLevel and above. Every
// record carries the service name; if traceIDFn is non-nil, records also
// carry the trace id of the calling context.
func New(w io.Writer, minLevel Level, serviceName string, traceIDFn TraceIDFn) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), minLevel)
	sl := zap.New(core).With(zap.String("service", serviceName)).Sugar()

	return &Logger{sl: sl, traceIDFn: traceIDFn}
}

// Debug logs at debug level with alternating key/value args.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.sl.Debugw(msg, l.withTraceID(ctx, args)...)
}

// Info logs at info level with alternating key/value args.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.sl.Infow(msg, l.withTraceID(ctx, args)...)
}

// Warn logs at warn level with alternating key/value args.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.sl.Warnw(msg, l.withTraceID(ctx, args)...)
}

// Error logs at error level with alternating key/value args.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.sl.Errorw(msg, l.withTraceID(ctx, args)...)
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.sl.Sync()
}

func (l *Logger) withTraceID(ctx context.Context, args []any) []any {
	if l.traceIDFn == nil {
		return args
	}
	if id := l.traceIDFn(ctx); id != "" {
		return append(args, "trace_id", id)
	}
	return args
}
