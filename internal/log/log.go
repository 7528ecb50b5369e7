// Package log is the structured logger of the spongefish command.
// Library packages only use it to report transcripts that were dropped
// before being finalized.
package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger logs key-value pairs at different levels.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
	Sync() error
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// New returns a logger that prints statements at the given level or
// above. A nil output logs to stderr, keeping stdout for command output.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	if output == nil {
		output = os.Stderr
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	if isJSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &log{zap.New(core).Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &log{zap.NewNop().Sugar()}
}

type ctxLoggerKey string

const ctxLogger ctxLoggerKey = "spongefishLogger"

// ToContext sets the logger on the context.
func ToContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxLogger, l)
}

// FromContextOrNop returns the logger set with ToContext, or a logger
// that discards everything.
func FromContextOrNop(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxLogger).(Logger); ok {
		return l
	}
	return Nop()
}
