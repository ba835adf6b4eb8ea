// Package logging configures the process-wide zap logger. Output always
// goes to a file: writing to stdout or stderr would corrupt the terminal UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/keepsake-app/keepsake/internal/config"
)

var logger = zap.NewNop()

// Init builds the file-backed logger from config. Call once at startup,
// before the UI takes over the terminal.
func Init(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	logger = l
	return l, nil
}

// L returns the process logger. A nop logger before Init and in tests.
func L() *zap.Logger { return logger }

// Sync flushes buffered entries. Call at shutdown.
func Sync() {
	_ = logger.Sync()
}
