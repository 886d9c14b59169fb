package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-gizmo/internal/logger"
	"github.com/Faultbox/midgard-gizmo/internal/scenario"
)

var simulateOpts struct {
	frames bool
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>...",
	Short: "Replay scenario scripts and check their expectations",
	Long: `Simulate replays each scenario script against a fresh gizmo and prints
the final transform. Scripts with an expect section fail the command when the
outcome differs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateOpts.frames, "frames", false, "print every replayed frame as YAML")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log := logger.Named("simulate")
	runner := scenario.NewRunner(log)
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		rep, err := runner.Run(s)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if simulateOpts.frames {
			data, err := yaml.Marshal(rep)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "---\n%s", data)
		}

		status := "ok"
		if err := s.Check(rep); err != nil {
			failed++
			status = "FAIL: " + err.Error()
			log.Warn("expectation failed", zap.String("scenario", s.Name), zap.Error(err))
		}
		t := rep.Final
		fmt.Fprintf(out, "%-24s results=%-3d translation=%.4v rotation=%.4v scale=%.4v  %s\n",
			s.Name, rep.Results, t.Translation, t.Rotation, t.Scale, status)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(args))
	}
	return nil
}
