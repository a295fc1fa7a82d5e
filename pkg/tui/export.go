package tui

import (
	"fmt"
	"os"
	"time"

	"glowutt/pkg/config"
	"glowutt/pkg/cru"
	"glowutt/pkg/exporter"
	"glowutt/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunExportTUI runs the interactive flow for picking courses out of the
// parsed corpus and exporting them as an iCalendar file.
func RunExportTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the GlowUTT calendar exporter!"))

	cfg, _ := config.Load()
	dataDir := config.ResolveDataDir(cfg)

	parser := cru.NewParser()
	var loadErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Parsing course resource files in %s...", dataDir)).
		Action(func() {
			loadErr = parser.LoadDirectory(dataDir)
		}).
		Run()

	if loadErr != nil {
		return fmt.Errorf("failed to load course data: %w", loadErr)
	}

	courses := parser.Courses()
	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No courses found in " + dataDir))
		return nil
	}
	if parser.ErrorCount() > 0 {
		fmt.Printf("Skipped %d malformed session line(s) while parsing.\n", parser.ErrorCount())
	}

	savedCourseMap := make(map[string]bool)
	if cfg != nil {
		for _, code := range cfg.SavedCourses {
			savedCourseMap[code] = true
		}
	}

	var courseOptions []huh.Option[string]
	for _, c := range courses {
		label := fmt.Sprintf("%s (%d sessions)", c.Code, len(c.Sessions))
		opt := huh.NewOption(label, c.Code)
		if savedCourseMap[c.Code] {
			opt = opt.Selected(true)
		}
		courseOptions = append(courseOptions, opt)
	}

	var selectedCodes []string
	startDay := "Monday"
	endDay := "Friday"
	output := "schedule.ics"

	dayOptions := make([]huh.Option[string], 0, len(schedule.Weekdays))
	for _, d := range schedule.Weekdays {
		dayOptions = append(dayOptions, huh.NewOption(d, d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your course(s)").
				Description("Space = toggle, Enter = confirm. Empty selection exports everything.").
				Options(courseOptions...).
				Value(&selectedCodes).
				Filterable(true).
				Height(12),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("First day of the calendar").
				Options(dayOptions...).
				Value(&startDay),
			huh.NewSelect[string]().
				Title("Last day of the calendar").
				Description("Picking a day before the first one wraps past Sunday.").
				Options(dayOptions...).
				Value(&endDay),
			huh.NewInput().
				Title("Output file").
				Value(&output),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	filtered, err := schedule.FilterByCourseAndDayRange(courses, selectedCodes, startDay, endDay)
	if err != nil {
		return err
	}
	if len(filtered) == 0 {
		fmt.Println(errorStyle.Render("No sessions match the selected courses and day range!"))
		return nil
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(filtered, time.Now(), file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	sessionCount := 0
	for _, c := range filtered {
		sessionCount += len(c.Sessions)
	}
	fmt.Printf("Successfully exported %d session(s) from %d course(s) to %s\n", sessionCount, len(filtered), output)

	if len(selectedCodes) > 0 && cfg != nil {
		var remember bool
		confirm := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Remember this course selection for next time?").
					Value(&remember),
			),
		).WithTheme(GetTheme())

		if err := confirm.Run(); err == nil && remember {
			cfg.SavedCourses = selectedCodes
			if err := config.Save(cfg); err != nil {
				fmt.Println(errorStyle.Render("Could not save selection: " + err.Error()))
			}
		}
	}

	return nil
}
