package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ncobase/taskbridge/config"
	"github.com/sirupsen/logrus"
)

// VersionKey is the log field holding the build version.
const VersionKey = "version"

// Logger wraps logrus with context-aware helpers.
type Logger struct {
	*logrus.Logger
	version string
	logFile *os.File
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StdLogger returns the singleton logger instance
func StdLogger() *Logger {
	once.Do(func() {
		standardLogger = &Logger{Logger: logrus.New()}
		standardLogger.SetFormatter(&logrus.TextFormatter{})
		standardLogger.SetOutput(os.Stderr)
	})
	return standardLogger
}

// New configures the standard logger and returns a cleanup function.
func New(c *config.Logger) (func(), error) {
	return StdLogger().Init(c)
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.version = v
}

// Init applies c to l.
func (l *Logger) Init(c *config.Logger) (func(), error) {
	if c == nil {
		return func() {}, nil
	}
	if c.Output == "file" && c.OutputFile == "" {
		return nil, fmt.Errorf("logger: output is file but output_file is empty")
	}
	prev := l.logFile
	l.logFile = nil
	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "file":
		if err := l.openFile(c.OutputFile); err != nil {
			l.logFile = prev
			return nil, err
		}
	default:
		l.SetOutput(os.Stderr)
	}

	if prev != nil {
		_ = prev.Close()
	}
	return l.closeFile, nil
}

// closeFile closes the current log file, if any.
func (l *Logger) closeFile() {
	if l.logFile != nil {
		_ = l.logFile.Close()
		l.logFile = nil
	}
}

func (l *Logger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	l.logFile = f
	l.SetOutput(f)
	return nil
}

// SetWriter redirects output, mainly for tests.
func (l *Logger) SetWriter(w io.Writer) {
	l.SetOutput(w)
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if id := RequestID(ctx); id != "" {
		fields[RequestIDKey] = id
	}
	if l.version != "" {
		fields[VersionKey] = l.version
	}
	return l.WithFields(fields)
}

// WithContextFields returns an entry carrying ctx fields plus fields.
func (l *Logger) WithContextFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	return l.entryFromContext(ctx).WithFields(fields)
}

func (l *Logger) Debug(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Debug(args...)
}
func (l *Logger) Info(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Info(args...)
}
func (l *Logger) Warn(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Warn(args...)
}
func (l *Logger) Error(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Error(args...)
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Debugf(format, args...)
}
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Infof(format, args...)
}
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Warnf(format, args...)
}
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Errorf(format, args...)
}
