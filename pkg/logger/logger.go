package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger keeps the printf-style call sites used across the services while
// writing structured zerolog events underneath.
type Logger struct {
	zl zerolog.Logger
}

// New returns a console logger suitable for local runs and tests.
func New() *Logger {
	return NewWithEnv("development")
}

// NewWithEnv emits JSON lines outside development and a human readable
// console format in development.
func NewWithEnv(appEnv string) *Logger {
	if appEnv == "development" {
		return NewWithWriter(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, zerolog.DebugLevel)
	}
	return NewWithWriter(os.Stdout, zerolog.InfoLevel)
}

func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// With returns a child logger carrying an extra field on every line.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Zerolog exposes the underlying logger for libraries that want it directly.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zl
}
