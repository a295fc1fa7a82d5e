package cmd

import (
	"fmt"

	"glowutt/pkg/schedule"

	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity <room>",
	Short: "Show the maximum number of seats of a room",
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

		fmt.Printf("Room %s seats up to %d people.\n", args[0], schedule.MaxRoomCapacity(courses, args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
