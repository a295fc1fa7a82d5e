package cmd

import (
	"fmt"
	"os"

	"glowutt/pkg/chart"

	"github.com/spf13/cobra"
)

var rankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Generate an HTML chart ranking rooms by seating capacity",
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		data := chart.CapacityRanking(courses)
		if len(data) == 0 {
			return fmt.Errorf("no rooms found in the course data")
		}

		output, _ := cmd.Flags().GetString("output")
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := chart.WriteRankingHTML(data, file); err != nil {
			return err
		}

		fmt.Printf("Wrote capacity ranking for %d room(s) to %s\n", len(data), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rankingCmd)

	rankingCmd.Flags().StringP("output", "o", "ranking.html", "Output HTML file path")
}
