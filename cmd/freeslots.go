package cmd

import (
	"fmt"
	"strings"

	"glowutt/pkg/schedule"

	"github.com/spf13/cobra"
)

var freeSlotsCmd = &cobra.Command{
	Use:   "free-slots <room>",
	Short: "Show the free time slots of a room across the working week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		sessions := schedule.SessionsOfRoom(courses, args[0])
		if len(sessions) == 0 {
			return fmt.Errorf("room %q not found in any session", args[0])
		}

		byDay, _ := cmd.Flags().GetBool("by-day")
		free := schedule.FreeIntervalsForRoom(sessions, schedule.FreeIntervalOptions{MatchSessionDay: byDay})

		fmt.Printf("Free slots for room %s:\n", args[0])
		for _, day := range schedule.WorkingDays {
			var slots []string
			for _, interval := range free[day] {
				slots = append(slots, interval.String())
			}
			if len(slots) == 0 {
				fmt.Printf("  %-10s fully booked\n", day)
				continue
			}
			fmt.Printf("  %-10s %s\n", day, strings.Join(slots, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(freeSlotsCmd)

	freeSlotsCmd.Flags().Bool("by-day", false, "Only block a slot on the weekday its session is actually held")
}
