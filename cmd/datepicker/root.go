package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/datepicker/internal/app"
	"github.com/five82/datepicker/internal/calendar"
)

var (
	configPath  string
	prefsPath   string
	dateArg     string
	viewArg     string
	monthsArg   int
	weekNumbers bool
)

var rootCmd = &cobra.Command{
	Use:           "datepicker",
	Short:         "Pick a date in the terminal",
	Long:          "Browse a calendar in the terminal and print the selected date as YYYY-MM-DD on exit",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPicker,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file path (default: ~/.config/datepicker/config.toml)")
	flags.StringVar(&dateArg, "date", "", "Initial view date as YYYY-MM-DD (default: today)")
	flags.StringVar(&viewArg, "view", "", "Initial view: day, month or year")
	flags.IntVar(&monthsArg, "months", 0, "Number of months shown side by side (default from config)")
	flags.BoolVar(&weekNumbers, "week-numbers", true, "Show ISO week numbers (default from config)")

	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "Preferences file path (default: ~/.config/datepicker/prefs.toml)")
}

func runPicker(cmd *cobra.Command, args []string) error {
	opts, err := pickerOptions(cmd)
	if err != nil {
		return err
	}
	opts.PrefsPath = prefsPath

	date, err := app.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if !date.IsZero() {
		fmt.Fprintln(cmd.OutOrStdout(), date)
	}
	return nil
}

// pickerOptions collects the flags shared by every command. Flags the user
// did not set are left zero so the config file decides.
func pickerOptions(cmd *cobra.Command) (app.Options, error) {
	opts := app.Options{
		ConfigPath:    configPath,
		ViewMode:      viewArg,
		DisplayMonths: monthsArg,
	}
	if dateArg != "" {
		date, err := calendar.ParseDate(dateArg)
		if err != nil {
			return app.Options{}, fmt.Errorf("--date: %w", err)
		}
		opts.Date = date
	}
	if cmd.Flags().Changed("week-numbers") {
		show := weekNumbers
		opts.WeekNumbers = &show
	}
	return opts, nil
}
