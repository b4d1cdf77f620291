// ABOUTME: CLI command for evaluation settings and preferences.
// ABOUTME: Flips partial-credit, strict-wellness, theme, and sync booleans.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	setPartialSteps    string
	setPartialExercise string
	setStrictWellness  string
	setAutoSync        string
	setNotifications   string
	setTheme           string
	setBackend         string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show or change settings. Booleans take true/false.

Examples:
  habits settings
  habits settings --strict-wellness true
  habits settings --partial-steps false --auto-sync false
  habits settings --backend sqlite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := appState.Settings()
		if err != nil {
			return err
		}

		changed := false
		for _, opt := range []struct {
			raw    string
			target *bool
		}{
			{setPartialSteps, &s.AllowPartialSteps},
			{setPartialExercise, &s.AllowPartialExercise},
			{setStrictWellness, &s.StrictWellness},
		} {
			if opt.raw == "" {
				continue
			}
			v, err := parseBool(opt.raw)
			if err != nil {
				return err
			}
			*opt.target = v
			changed = true
		}
		if changed {
			if err := appState.UpdateSettings(cmd.Context(), s); err != nil {
				return err
			}
		}

		if setAutoSync != "" {
			v, err := parseBool(setAutoSync)
			if err != nil {
				return err
			}
			if err := localStore.SaveAutoSync(v); err != nil {
				return err
			}
			changed = true
		}
		if setNotifications != "" {
			v, err := parseBool(setNotifications)
			if err != nil {
				return err
			}
			if err := localStore.SaveNotifications(v); err != nil {
				return err
			}
			changed = true
		}
		if setTheme != "" {
			if err := localStore.SaveTheme(setTheme); err != nil {
				return err
			}
			changed = true
		}
		if setBackend != "" {
			cfg.Backend = setBackend
			if err := cfg.Save(); err != nil {
				return err
			}
			changed = true
		}

		if changed {
			color.Green("✓ Settings updated")
		}

		autoSync, _ := localStore.AutoSync()
		notifications, _ := localStore.Notifications()
		theme, _ := localStore.Theme()
		if theme == "" {
			theme = "default"
		}

		fmt.Printf("partial steps credit:    %v\n", s.AllowPartialSteps)
		fmt.Printf("partial exercise credit: %v\n", s.AllowPartialExercise)
		fmt.Printf("strict wellness:         %v\n", s.StrictWellness)
		fmt.Printf("auto sync:               %v\n", autoSync)
		fmt.Printf("notifications:           %v\n", notifications)
		fmt.Printf("theme:                   %s\n", theme)
		fmt.Printf("backend:                 %s\n", cfg.GetBackend())
		printNotices()
		return nil
	},
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "on", "yes":
		return true, nil
	case "false", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q: want true or false", s)
}

func init() {
	settingsCmd.Flags().StringVar(&setPartialSteps, "partial-steps", "", "allow 90% step credit (true/false)")
	settingsCmd.Flags().StringVar(&setPartialExercise, "partial-exercise", "", "allow 80% exercise credit (true/false)")
	settingsCmd.Flags().StringVar(&setStrictWellness, "strict-wellness", "", "require 4 of 5 wellness items (true/false)")
	settingsCmd.Flags().StringVar(&setAutoSync, "auto-sync", "", "push after every change (true/false)")
	settingsCmd.Flags().StringVar(&setNotifications, "notifications", "", "notification preference (true/false)")
	settingsCmd.Flags().StringVar(&setTheme, "theme", "", "theme preference")
	settingsCmd.Flags().StringVar(&setBackend, "backend", "", "remote backend: local, sqlite, charm, or rest")
}
