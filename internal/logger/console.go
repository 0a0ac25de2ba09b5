// Package logger provides the leveled console logger used across fse. All
// output carries a [HH:MM:SS] timestamp prefix and is safe for concurrent
// use; collaborator goroutines (geocoding, notification) log through the
// same instance as the interactive session.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelTrace = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

// ConsoleLogger writes timestamped, level-filtered messages to a writer.
// Color is applied to the level tag when the writer is a color-capable
// terminal.
type ConsoleLogger struct {
	writer   io.Writer
	level    int
	mu       sync.Mutex
	colorize bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given level.
// Valid levels are trace, debug, info, warn, error (case-insensitive); empty
// or unknown levels default to info. A nil writer discards all output.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:   w,
		level:    parseLevel(level),
		colorize: w == os.Stdout || w == os.Stderr,
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

var levelColors = map[int]*color.Color{
	levelWarn:  color.New(color.FgYellow),
	levelError: color.New(color.FgRed),
	levelDebug: color.New(color.FgHiBlack),
	levelTrace: color.New(color.FgHiBlack),
}

func levelTag(level int) string {
	switch level {
	case levelTrace:
		return "TRACE"
	case levelDebug:
		return "DEBUG"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *ConsoleLogger) log(level int, format string, args ...interface{}) {
	if l == nil || l.writer == nil || level < l.level {
		return
	}

	tag := fmt.Sprintf("[%s]", levelTag(level))
	if l.colorize && !color.NoColor {
		if c, ok := levelColors[level]; ok {
			tag = c.Sprint(tag)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s %s\n",
		time.Now().Format("15:04:05"), tag, fmt.Sprintf(format, args...))
}

// Tracef logs at trace level (most verbose).
func (l *ConsoleLogger) Tracef(format string, args ...interface{}) {
	l.log(levelTrace, format, args...)
}

// Debugf logs at debug level.
func (l *ConsoleLogger) Debugf(format string, args ...interface{}) {
	l.log(levelDebug, format, args...)
}

// Infof logs at info level.
func (l *ConsoleLogger) Infof(format string, args ...interface{}) {
	l.log(levelInfo, format, args...)
}

// Warnf logs at warn level. Collaborator failures (geocoding, SMS delivery)
// surface here rather than as workflow errors.
func (l *ConsoleLogger) Warnf(format string, args ...interface{}) {
	l.log(levelWarn, format, args...)
}

// Errorf logs at error level.
func (l *ConsoleLogger) Errorf(format string, args ...interface{}) {
	l.log(levelError, format, args...)
}
