package cmd

import (
	"fmt"
	"os"
	"time"

	"glowutt/pkg/exporter"
	"glowutt/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [course...]",
	Short: "Export course sessions to an ICS file",
	Long: `Export the sessions of the given courses (or all courses when none are
named) to an iCalendar file. Sessions are anchored to the next occurrence of
their weekday, starting from today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startDay, _ := cmd.Flags().GetString("start-day")
		endDay, _ := cmd.Flags().GetString("end-day")
		output, _ := cmd.Flags().GetString("output")

		courses, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		filtered, err := schedule.FilterByCourseAndDayRange(courses, args, normalizeDay(startDay), normalizeDay(endDay))
		if err != nil {
			return err
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no sessions match the given courses and day range")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		var genErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting calendar to %s...", output)).
			Action(func() {
				genErr = exporter.GenerateICS(filtered, time.Now(), file)
			}).
			Run()

		if genErr != nil {
			return fmt.Errorf("failed to generate ICS: %w", genErr)
		}

		sessionCount := 0
		for _, c := range filtered {
			sessionCount += len(c.Sessions)
		}
		fmt.Printf("Successfully exported %d session(s) from %d course(s) to %s\n", sessionCount, len(filtered), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("start-day", "Monday", "First weekday of the export range")
	exportCmd.Flags().String("end-day", "Sunday", "Last weekday of the export range (wraps past Sunday if earlier than start)")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
