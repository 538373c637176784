package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var pid = os.Getpid()

type Logger struct {
	logger *zerolog.Logger
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.TraceLevel
	}
	return zerolog.InfoLevel
}

// New creates a JSON logger writing to stderr.
func New(isDebug bool) *Logger {
	zerolog.SetGlobalLevel(level(isDebug))
	logger := zerolog.New(os.Stderr).With().Timestamp().Int("pid", pid).Logger()
	return &Logger{logger: &logger}
}

// NewConsole creates a human-friendly logger tagged with the component name.
func NewConsole(isDebug bool, tag string, noColor bool) *Logger {
	zerolog.SetGlobalLevel(level(isDebug))
	zerolog.TimeFieldFormat = time.RFC3339Nano
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.0000", NoColor: noColor,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			"pid",
			zerolog.LevelFieldName,
			"s",
			"m",
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"s", "m", "pid"},
	}
	if output.NoColor {
		output.FormatMessage = func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%v", i)
		}
	}
	logger := zerolog.New(output).With().
		Str("pid", fmt.Sprintf("%4x", pid)).
		Str("s", tag).
		Str("m", "").
		Timestamp().Logger()
	return &Logger{logger: &logger}
}

// NewWriter creates a logger writing JSON lines to w. Useful in tests.
func NewWriter(w io.Writer) *Logger {
	logger := zerolog.New(w)
	return &Logger{logger: &logger}
}

func Default() *Logger { return &Logger{logger: &log.Logger} }

// Nop returns a disabled logger.
func Nop() *Logger {
	logger := zerolog.Nop()
	return &Logger{logger: &logger}
}

// With creates a child logger with the field added to its context.
func (l *Logger) With() zerolog.Context { return l.logger.With() }

// Extend adds some additional context to the existing logger.
func (l *Logger) Extend(ctx zerolog.Context) *Logger {
	logger := ctx.Logger()
	return &Logger{logger: &logger}
}

// Module returns a child logger marked with a module name.
func (l *Logger) Module(name string) *Logger { return l.Extend(l.With().Str("m", name)) }

// Trace starts a new message with trace level.
func (l *Logger) Trace() *zerolog.Event { return l.logger.Trace() }

// Debug starts a new message with debug level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Info starts a new message with info level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

// Warn starts a new message with warn level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

// Error starts a new message with error level.
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// Fatal starts a new message with fatal level. The os.Exit(1) function
// is called by the Msg method.
func (l *Logger) Fatal() *zerolog.Event { return l.logger.Fatal() }

// Printf sends a log event using debug level and no extra field.
// Arguments are handled in the manner of fmt.Printf.
func (l *Logger) Printf(format string, v ...any) { l.logger.Printf(format, v...) }
