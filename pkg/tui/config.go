package tui

import (
	"fmt"

	"glowutt/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunConfigTUI lets the user edit the persistent settings interactively.
func RunConfigTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	accent := cfg.AccentColor
	if accent == "" {
		accent = "99"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course data directory").
				Description("Directory scanned recursively for .cru files.").
				Placeholder(config.DefaultDataDir).
				Value(&dataDir),
			huh.NewSelect[string]().
				Title("Accent color").
				Options(
					huh.NewOption("Purple (default)", "99"),
					huh.NewOption("Pink", "212"),
					huh.NewOption("Teal", "36"),
					huh.NewOption("Orange", "208"),
					huh.NewOption("Green", "40"),
				).
				Value(&accent),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DataDir = dataDir
	cfg.AccentColor = accent
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("Settings saved."))
	return nil
}
