package cmd

import (
	"fmt"

	"glowutt/pkg/config"
	"glowutt/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage glowutt configuration",
	Long:  "View or edit your local configuration settings (data directory, saved courses, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setData, _ := cmd.Flags().GetString("set-data")
		if setData != "" {
			cfg.DataDir = setData
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Data directory saved as: %s\n", setData)
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-data", "s", "", "Set the directory scanned for .cru files")
}
