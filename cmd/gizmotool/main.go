// gizmotool renders and replays transform gizmo interactions without a window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/internal/logger"
)

var (
	flags *config.Flags
	cfg   *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gizmotool",
	Short: "Headless tools for the transform gizmo",
	Long: `gizmotool renders gizmo snapshots to image files, replays scripted
pointer drags against a gizmo and manages the gizmo.yaml settings file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flags)
		if err != nil {
			return err
		}
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	flags = config.BindFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
