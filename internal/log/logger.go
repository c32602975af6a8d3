// Package log provides the leveled logger used by the greet binaries.
// Everything is written to standard error: standard output belongs to
// the greeting sequence and must stay byte-exact.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Level represents log severity levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger interface defines structured logging methods
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	SetLevel(level Level)
	SetJSONOutput(enabled bool)
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level      Level
	JSONOutput bool
	Output     io.Writer
}

// DefaultLogger is the default implementation of Logger
type DefaultLogger struct {
	mu         sync.Mutex
	level      Level
	jsonOutput bool
	out        io.Writer
	colors     bool
}

var (
	defaultLogger *DefaultLogger
	once          sync.Once
)

// New creates a new logger with the given configuration
func New(cfg LoggerConfig) *DefaultLogger {
	l := &DefaultLogger{
		level:      cfg.Level,
		jsonOutput: cfg.JSONOutput,
		out:        cfg.Output,
	}

	// Default to os.Stderr if not provided
	if l.out == nil {
		l.out = os.Stderr
	}
	l.colors = isTerminal(l.out)

	return l
}

// Default returns the default logger instance
func Default() *DefaultLogger {
	once.Do(func() {
		defaultLogger = New(LoggerConfig{
			Level:  InfoLevel,
			Output: os.Stderr,
		})
	})
	return defaultLogger
}

// isTerminal checks if the writer is an interactive terminal.
// NO_COLOR disables colors regardless.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatMessage formats the message with key-value args
func formatMessage(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)

	if len(args)%2 != 0 {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf("%v", args[0]))
		args = args[1:]
	}

	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprintf("%v", args[i+1]))
	}

	return sb.String()
}

// colorize wraps the message with ANSI color codes if colors are enabled
func (l *DefaultLogger) colorize(level Level, msg string) string {
	if !l.colors {
		return msg
	}

	color := getColor(level)
	reset := "\033[0m"
	return color + msg + reset
}

// getColor returns the ANSI color code for the given level
func getColor(level Level) string {
	switch level {
	case DebugLevel:
		return "\033[36m" // Cyan
	case InfoLevel:
		return "\033[32m" // Green
	case WarnLevel:
		return "\033[33m" // Yellow
	case ErrorLevel:
		return "\033[31m" // Red
	default:
		return ""
	}
}

// write outputs the log message
func (l *DefaultLogger) write(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	levelStr := level.String()

	if l.jsonOutput {
		entry := map[string]interface{}{
			"timestamp": timestamp,
			"level":     levelStr,
			"message":   msg,
		}
		data, _ := json.Marshal(entry)
		fmt.Fprintln(l.out, string(data))
		return
	}

	// Formatted output with colors
	coloredMsg := l.colorize(level, msg)
	fmt.Fprintf(l.out, "[%s] %s: %s\n", timestamp, levelStr, coloredMsg)
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	if l.level > DebugLevel {
		return
	}
	l.write(DebugLevel, formatMessage(msg, args...))
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	if l.level > InfoLevel {
		return
	}
	l.write(InfoLevel, formatMessage(msg, args...))
}

// Warn logs a warning message
func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	if l.level > WarnLevel {
		return
	}
	l.write(WarnLevel, formatMessage(msg, args...))
}

// Error logs an error message
func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	if l.level > ErrorLevel {
		return
	}
	l.write(ErrorLevel, formatMessage(msg, args...))
}

// SetLevel sets the minimum log level
func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetJSONOutput enables or disables JSON output
func (l *DefaultLogger) SetJSONOutput(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonOutput = enabled
}

// Ensure DefaultLogger implements Logger
var _ Logger = (*DefaultLogger)(nil)
