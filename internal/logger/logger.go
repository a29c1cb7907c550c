package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// Logger writes leveled, caller-tagged lines.
type Logger struct {
	level     LogLevel
	logger    *log.Logger
	file      *os.File
	useColors bool
	now       func() time.Time
}

var levelColors = map[LogLevel]string{
	DEBUG: "\033[36m",
	INFO:  "\033[32m",
	WARN:  "\033[33m",
	ERROR: "\033[31m",
	FATAL: "\033[35m",
}

var levelPrefixes = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// ParseLevel maps a level name to a LogLevel. Unknown names yield INFO.
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// New creates a logger writing to w without colors.
func New(w io.Writer, levelStr string) *Logger {
	return &Logger{
		level:  ParseLevel(levelStr),
		logger: log.New(w, "", 0),
		now:    time.Now,
	}
}

// NewLogger creates a console logger; colors are enabled on a terminal.
func NewLogger(levelStr string) *Logger {
	l := New(os.Stdout, levelStr)
	if fileInfo, err := os.Stdout.Stat(); err == nil && fileInfo.Mode()&os.ModeCharDevice != 0 {
		l.useColors = true
	}
	return l
}

// NewMultiLogger writes to the console and appends to filePath.
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}
	l := New(io.MultiWriter(os.Stdout, file), levelStr)
	l.file = file
	return l, nil
}

func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

func (l *Logger) output(level LogLevel, msg string) {
	if level < l.level {
		return
	}

	// Skip output and the exported wrapper.
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	prefix := fmt.Sprintf("%s [%s] %s:%d:", l.now().Format("2006/01/02 15:04:05"),
		levelPrefixes[level], filepath.Base(file), line)
	if l.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}
	l.logger.Println(prefix, msg)

	if level == FATAL {
		l.Close()
		os.Exit(1)
	}
}

func (l *Logger) Debug(v ...interface{}) { l.output(DEBUG, fmt.Sprint(v...)) }

func (l *Logger) Debugf(format string, v ...interface{}) { l.output(DEBUG, fmt.Sprintf(format, v...)) }

func (l *Logger) Info(v ...interface{}) { l.output(INFO, fmt.Sprint(v...)) }

func (l *Logger) Infof(format string, v ...interface{}) { l.output(INFO, fmt.Sprintf(format, v...)) }

func (l *Logger) Warn(v ...interface{}) { l.output(WARN, fmt.Sprint(v...)) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.output(WARN, fmt.Sprintf(format, v...)) }

func (l *Logger) Error(v ...interface{}) { l.output(ERROR, fmt.Sprint(v...)) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.output(ERROR, fmt.Sprintf(format, v...)) }

// Fatalf logs and exits the process with status 1.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.output(FATAL, fmt.Sprintf(format, v...)) }

func (l *Logger) SetLevel(levelStr string) {
	l.level = ParseLevel(levelStr)
}

func (l *Logger) Level() LogLevel {
	return l.level
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
