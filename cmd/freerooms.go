package cmd

import (
	"fmt"

	"glowutt/pkg/schedule"

	"github.com/spf13/cobra"
)

var freeRoomsCmd = &cobra.Command{
	Use:   "free-rooms <day>",
	Short: "List the rooms free on a given day, optionally within a time window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		var window *schedule.Interval
		if timeFlag, _ := cmd.Flags().GetString("time"); timeFlag != "" {
			w, err := schedule.ParseTimeWindow(timeFlag)
			if err != nil {
				return err
			}
			window = &w
		}

		day := normalizeDay(args[0])
		rooms, err := schedule.RoomsFreeAt(courses, day, window)
		if err != nil {
			return err
		}

		if len(rooms) == 0 {
			fmt.Printf("No rooms are free on %s.\n", day)
			return nil
		}

		fmt.Printf("Rooms free on %s:\n", day)
		for _, room := range rooms {
			fmt.Println("  " + room)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(freeRoomsCmd)

	freeRoomsCmd.Flags().StringP("time", "t", "", "Time window to check, e.g. 10:00-12:00 (whole day when omitted)")
}
