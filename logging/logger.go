package logging

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLogLevel is returned when a log level string can't be parsed.
var ErrUnknownLogLevel = errors.New("unknown log level")

// ErrUnknownBackend is returned when a logger backend name is not supported.
var ErrUnknownBackend = errors.New("unknown logger backend")

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Logger interface for operational logging, warnings, and error reporting.
// *slog.Logger satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Join(ErrUnknownLogLevel, errors.New(level))
	}
}

// NewSlogLogger creates a JSON slog.Logger writing to w.
func NewSlogLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// New creates a Logger for the given backend name ("slog" or "zap").
// The returned cleanup function flushes buffered entries and must be called before exit.
func New(backend string, w io.Writer, level slog.Level) (Logger, func(), error) {
	switch backend {
	case BackendSlog, "":
		return NewSlogLogger(w, level), func() {}, nil

	case BackendZap:
		zl := NewZapLogger(w, level)
		return zl, func() { _ = zl.Sync() }, nil

	default:
		return nil, nil, errors.Join(ErrUnknownBackend, errors.New(backend))
	}
}

// ZapLogger adapts a zap.SugaredLogger to the Logger interface.
type ZapLogger struct {
	sugared *zap.SugaredLogger
}

// NewZapLogger creates a ZapLogger with a JSON encoder writing to w.
func NewZapLogger(w io.Writer, level slog.Level) *ZapLogger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		toZapLevel(level),
	)

	return WrapZap(zap.New(core).Sugar())
}

// WrapZap adapts an existing SugaredLogger.
func WrapZap(sugared *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugared: sugared}
}

func (z *ZapLogger) Debug(msg string, args ...any) {
	z.sugared.Debugw(msg, args...)
}

func (z *ZapLogger) Info(msg string, args ...any) {
	z.sugared.Infow(msg, args...)
}

func (z *ZapLogger) Warn(msg string, args ...any) {
	z.sugared.Warnw(msg, args...)
}

func (z *ZapLogger) Error(msg string, args ...any) {
	z.sugared.Errorw(msg, args...)
}

// Sync flushes any buffered log entries.
func (z *ZapLogger) Sync() error {
	return z.sugared.Sync()
}

func toZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
