// gizmoview is an interactive viewer hosting one transform gizmo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/internal/logger"
)

func main() {
	flags := config.BindFlags(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Info("=== Midgard Gizmo Viewer ===")
	logger.Log.Debug("config loaded", zap.Any("window", cfg.Window), zap.Strings("modes", cfg.Gizmo.Modes))

	v, err := newViewer(cfg)
	if err != nil {
		logger.Log.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Log.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Log.Info("viewer closed normally")
}
