package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Interface -.
type Interface interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Logger -.
type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

// New -.
func New(level string) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn":
		l = zerolog.WarnLevel
	case "info":
		l = zerolog.InfoLevel
	case "debug":
		l = zerolog.DebugLevel
	default:
		l = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(l)

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).
		Level(l).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{
		logger: &logger,
	}
}

// Debug -.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(l.logger.Debug(), msg, args...)
}

// Info -.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(l.logger.Info(), msg, args...)
}

// Warn -.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(l.logger.Warn(), msg, args...)
}

// Error -.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(l.logger.Error(), msg, args...)
}

// Fatal -.
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log(l.logger.Fatal(), msg, args...)

	os.Exit(1)
}

func (l *Logger) log(event *zerolog.Event, msg string, args ...interface{}) {
	for i := 0; i < len(args)-1; i += 2 {
		if key, ok := args[i].(string); ok {
			event = event.Interface(key, args[i+1])
		}
	}

	event.Msg(msg)
}

// WithField - derive a logger with one extra field attached.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	newLogger := l.logger.With().Interface(key, value).Logger()
	return &Logger{logger: &newLogger}
}
