// Package logging builds the application logger: JSON lines in a rotated
// file, since the terminal belongs to the UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger.
type Options struct {
	Level      string // debug, info, warn or error
	File       string // empty means the XDG state dir
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Stderr also writes warnings and errors to stderr, for non-interactive
	// commands.
	Stderr bool
}

// DefaultFile returns the default log file path.
func DefaultFile() (string, error) {
	return xdg.StateFile(filepath.Join("lfmbrowse", "lfmbrowse.log"))
}

// New creates a logger. The returned close function flushes and closes the
// log file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	path := opts.File
	if path == "" {
		if path, err = DefaultFile(); err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level)
	if opts.Stderr {
		consoleConfig := encoderConfig
		consoleConfig.TimeKey = ""
		consoleConfig.CallerKey = ""
		consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		stderrLevel := max(level, zapcore.WarnLevel)
		core = zapcore.NewTee(core, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			zapcore.Lock(os.Stderr),
			stderrLevel,
		))
	}

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	closeFn := func() error {
		_ = logger.Sync() //nolint:errcheck // sync on a rotated file may fail harmlessly
		return rotator.Close()
	}
	return logger, closeFn, nil
}
