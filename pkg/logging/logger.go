package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// RotatingFile is the log sink returned by FileLogger. Close flushes and
// releases the underlying file.
type RotatingFile struct {
	*lumberjack.Logger
}

// FileLogger writes JSON entries to stdout and to a size-rotated file.
func FileLogger(level logrus.Level, opts FileOptions) (*RotatingFile, *logrus.Logger, error) {
	if opts.Path == "" {
		opts.Path = "./logs/app.log"
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, err
	}
	file := &RotatingFile{Logger: &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}}

	logger := logrus.New()
	logger.SetOutput(io.MultiWriter(os.Stdout, file))
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(level)
	return file, logger, nil
}

// ConsoleLogger is used by command line tools that should not touch the log
// directory.
func ConsoleLogger(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(level)
	return logger
}
