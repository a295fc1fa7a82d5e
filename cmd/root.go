package cmd

import (
	"fmt"
	"os"
	"strings"

	"glowutt/pkg/config"
	"glowutt/pkg/cru"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var rootCmd = &cobra.Command{
	Use:   "glowutt",
	Short: "A CLI and TUI for UTT course resource files",
	Long: `glowutt parses the university's course resource (.cru) files and answers
questions about the schedule: sessions of a course, free rooms, free slots,
iCalendar exports and occupancy charts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data", "d", "", "Directory containing .cru files (defaults to the configured data dir)")
}

// loadCorpus parses every .cru file under the effective data directory and
// returns the corpus. Parse diagnostics go to stderr without failing the run.
func loadCorpus(cmd *cobra.Command) ([]*cru.Course, error) {
	dir, _ := cmd.Flags().GetString("data")
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dir = config.ResolveDataDir(cfg)
	}

	parser := cru.NewParser()
	if err := parser.LoadDirectory(dir); err != nil {
		return nil, fmt.Errorf("failed to load course data: %w", err)
	}

	for _, diag := range parser.Errors() {
		fmt.Fprintln(os.Stderr, "warning:", diag)
	}
	for _, warn := range parser.Warnings() {
		fmt.Fprintln(os.Stderr, "warning:", warn)
	}

	return parser.Courses(), nil
}

var titleCaser = cases.Title(language.English)

// normalizeDay turns user input like "monday" or "MONDAY" into the canonical
// weekday spelling before it reaches the query layer.
func normalizeDay(day string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(day)))
}
