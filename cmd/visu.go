package cmd

import (
	"fmt"
	"os"

	"glowutt/pkg/chart"

	"github.com/spf13/cobra"
)

var visuCmd = &cobra.Command{
	Use:   "visu <start-day> <end-day>",
	Short: "Generate an HTML chart of room occupancy over a day range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		startDay, endDay := normalizeDay(args[0]), normalizeDay(args[1])
		data, err := chart.OccupancyData(courses, startDay, endDay)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			return fmt.Errorf("no sessions between %s and %s", startDay, endDay)
		}

		output, _ := cmd.Flags().GetString("output")
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		title := fmt.Sprintf("Room occupancy %s to %s", startDay, endDay)
		if err := chart.WriteOccupancyHTML(data, title, file); err != nil {
			return err
		}

		fmt.Printf("Wrote occupancy chart for %d room(s) to %s\n", len(data), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(visuCmd)

	visuCmd.Flags().StringP("output", "o", "occupancy.html", "Output HTML file path")
}
