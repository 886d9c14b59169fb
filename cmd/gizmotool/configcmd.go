package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/midgard-gizmo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save gizmo.yaml settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings (defaults, file and flags merged)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSavePath string

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective settings to the user config directory or --path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configSavePath
		if path == "" {
			p, err := cfg.Save()
			if err != nil {
				return err
			}
			path = p
		} else if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user config directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.ConfigDir())
	},
}

func init() {
	configSaveCmd.Flags().StringVar(&configSavePath, "path", "", "write to this file instead")
	configCmd.AddCommand(configShowCmd, configSaveCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
