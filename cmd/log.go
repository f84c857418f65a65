package main

import (
	"fmt"
	"os"

	"github.com/pingcap/log"
	"go.uber.org/zap/zapcore"
)

// setupLogger keeps stdout for the remapped text.
func setupLogger(level string) error {
	cfg := &log.Config{
		Level:            level,
		DisableTimestamp: true,
	}
	lg, props, err := log.InitLoggerWithWriteSyncer(cfg, zapcore.Lock(os.Stderr))
	if err != nil {
		return fmt.Errorf("cannot init logger with level `%s`; %w", level, err)
	}
	log.ReplaceGlobals(lg, props)
	return nil
}
