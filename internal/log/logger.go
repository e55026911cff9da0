// Package log provides a global logger with configurable logging level. Output is written to stderr
// in a human-readable console format.

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelNone    Level = iota // Disables logging.
	LevelError                // Logs anomalies that are not expected to occur during normal use.
	LevelWarning              // Logs anomalies that are expected to occur occasionally during normal use.
	LevelInfo                 // Logs major events.
	LevelDebug                // Logs detailed IO
)

var (
	globalLogLevel Level
	logMutex       sync.Mutex
	logger         = newLogger(os.Stderr)
)

var labels = map[string]string{
	zerolog.LevelDebugValue: "[debug]",
	zerolog.LevelInfoValue:  "[info ]",
	zerolog.LevelWarnValue:  "[warn ]",
	zerolog.LevelErrorValue: "[error]",
}

var zerologLevels = map[Level]zerolog.Level{
	LevelNone:    zerolog.Disabled,
	LevelError:   zerolog.ErrorLevel,
	LevelWarning: zerolog.WarnLevel,
	LevelInfo:    zerolog.InfoLevel,
	LevelDebug:   zerolog.DebugLevel,
}

func newLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if s, ok := i.(string); ok {
				if label, ok := labels[s]; ok {
					return label
				}
			}
			return "[?????]"
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// SetLevel sets the most verbose level that will be written.
func SetLevel(level Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalLogLevel = level
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger = newLogger(w)
}

func current() (Level, zerolog.Logger) {
	logMutex.Lock()
	defer logMutex.Unlock()
	return globalLogLevel, logger
}

func log(level Level, component string, format string, a ...interface{}) {
	threshold, l := current()
	if level > threshold || level == LevelNone {
		return
	}
	event := l.WithLevel(zerologLevels[level])
	if component != "" {
		event = event.Str("component", component)
	}
	event.Msgf(format, a...)
}

func Debug(format string, a ...interface{}) {
	log(LevelDebug, "", format, a...)
}
func Info(format string, a ...interface{}) {
	log(LevelInfo, "", format, a...)
}
func Warning(format string, a ...interface{}) {
	log(LevelWarning, "", format, a...)
}
func Error(format string, a ...interface{}) {
	log(LevelError, "", format, a...)
}

// Logger writes messages tagged with a component name.
type Logger struct {
	component string
}

// Named returns a Logger that tags each message with component.
func Named(component string) Logger {
	return Logger{component: component}
}

func (l Logger) Debug(format string, a ...interface{}) {
	log(LevelDebug, l.component, format, a...)
}
func (l Logger) Info(format string, a ...interface{}) {
	log(LevelInfo, l.component, format, a...)
}
func (l Logger) Warning(format string, a ...interface{}) {
	log(LevelWarning, l.component, format, a...)
}
func (l Logger) Error(format string, a ...interface{}) {
	log(LevelError, l.component, format, a...)
}
