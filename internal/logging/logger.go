package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel is the severity of a log line
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String returns the level name used in log lines
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config value to a level. Unknown names mean INFO.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(name) {
	case "trace":
		return TRACE
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Logger writes levelled lines to a single sink. The terminal is owned by the
// renderer while the game runs, so nothing goes to stdout.
type Logger struct {
	mu    sync.Mutex
	out   *log.Logger
	file  *os.File
	level LogLevel
}

var globalLogger *Logger

// Init opens path for appending and routes all package logging there.
func Init(path string, level LogLevel) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	Close()
	globalLogger = &Logger{
		out:   log.New(file, "", log.LstdFlags|log.Lmicroseconds),
		file:  file,
		level: level,
	}
	return nil
}

// InitWriter routes logging to w. Used by tests and the snapshot mode.
func InitWriter(w io.Writer, level LogLevel) {
	Close()
	globalLogger = &Logger{
		out:   log.New(w, "", 0),
		level: level,
	}
}

// Close flushes and releases the log file, if any.
func Close() {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	if globalLogger.file != nil {
		globalLogger.file.Close()
	}
	globalLogger.mu.Unlock()
	globalLogger = nil
}

func Trace(format string, args ...any) { logMessage(TRACE, format, args...) }
func Debug(format string, args ...any) { logMessage(DEBUG, format, args...) }
func Info(format string, args ...any)  { logMessage(INFO, format, args...) }
func Warn(format string, args ...any)  { logMessage(WARN, format, args...) }
func Error(format string, args ...any) { logMessage(ERROR, format, args...) }

func logMessage(level LogLevel, format string, args ...any) {
	l := globalLogger
	if l == nil || level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}
