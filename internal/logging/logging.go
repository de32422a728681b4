// internal/logging/logging.go
// Package logging routes application events through a shared logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init sends log output to stdout and, when logPath is set, appends it to
// that file as well. Parent directories are created as needed.
func Init(logPath string, debug bool) error {
	return initWith(logPath, debug, true)
}

// InitFileOnly is Init without the stdout writer. The terminal dashboard uses
// it so log lines never land on the screen it draws. An empty logPath
// discards all output.
func InitFileOnly(logPath string, debug bool) error {
	return initWith(logPath, debug, false)
}

func initWith(logPath string, debug, console bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}

	if logPath = strings.TrimSpace(logPath); logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = file
		writers = append(writers, logFile)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return nil
}

// Close releases the log file and restores stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger exposes the shared logger for middleware that wants a Print sink.
func Logger() *logrus.Logger {
	return logger
}

func LogEvent(format string, args ...any) {
	logger.Infof(format, args...)
}

func LogWarn(format string, args ...any) {
	logger.Warnf(format, args...)
}

func LogDebug(format string, args ...any) {
	logger.Debugf(format, args...)
}

func LogError(format string, args ...any) {
	logger.Errorf(format, args...)
}

// LogParseWarning records a malformed row of the named dataset.
func LogParseWarning(dataset string, warning fmt.Stringer) {
	logger.Warn(buildParseMessage(dataset, warning))
}

func buildParseMessage(dataset string, warning fmt.Stringer) string {
	name := strings.TrimSpace(dataset)
	if name == "" {
		name = "unknown"
	}
	detail := "<nil>"
	if warning != nil {
		detail = warning.String()
	}
	return fmt.Sprintf("[PARSE] %s %s", name, detail)
}
