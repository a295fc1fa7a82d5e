package cmd

import (
	"fmt"

	"glowutt/pkg/schedule"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var courseHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)

var roomsCmd = &cobra.Command{
	Use:   "rooms <course>",
	Short: "List all sessions of a course with their rooms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		sessions := schedule.SessionsOfCourse(courses, args[0])
		if len(sessions) == 0 {
			return fmt.Errorf("course %q not found", args[0])
		}

		fmt.Println(courseHeaderStyle.Render(fmt.Sprintf("Sessions for %s", args[0])))
		for _, s := range sessions {
			room := s.Room
			if room == "" {
				room = "(no room)"
			}
			fmt.Printf("  %-4s %-10s %s-%s  %s\n", s.Type, s.Day, s.Start, s.End, room)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
}
