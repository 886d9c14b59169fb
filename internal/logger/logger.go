// Package logger builds the zap loggers used by the gizmo tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

// FileConfig holds rotating file sink settings.
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// DefaultFileConfig returns rotation defaults for a log file at path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  20,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Options selects the level and sinks of a logger.
type Options struct {
	Level string
	File  FileConfig
	// Console receives human-readable output. Nil disables the console sink.
	Console io.Writer
	// Color enables ANSI level colors on the console sink.
	Color bool
}

// New builds a logger from opts. With no sink configured the logger discards everything.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if opts.Console != nil {
		enc := encoderConfig(zapcore.TimeEncoderOfLayout("15:04:05.000"))
		if opts.Color {
			enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(opts.Console),
			lvl,
		))
	}

	if opts.File.Path != "" {
		sink := &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(zapcore.ISO8601TimeEncoder)),
			zapcore.AddSync(sink),
			lvl,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func encoderConfig(timeEnc zapcore.TimeEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// Init replaces Log with a logger writing to stderr and, when logFile is set,
// to a rotating file.
func Init(level, logFile string) error {
	opts := Options{Level: level, Console: os.Stderr, Color: true}
	if logFile != "" {
		opts.File = DefaultFileConfig(logFile)
	}
	l, err := New(opts)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// ParseLevel accepts debug, info, warn and error. An empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// Named returns a child of Log for one component.
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

// Sync flushes buffered entries of Log.
func Sync() {
	_ = Log.Sync()
}
