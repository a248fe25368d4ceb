package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/datepicker/internal/app"
	"github.com/five82/datepicker/internal/calendar"
	"github.com/five82/datepicker/internal/config"
	"github.com/five82/datepicker/internal/datepicker"
	"github.com/five82/datepicker/internal/prefs"
)

var traceCmd = &cobra.Command{
	Use:   "trace [gesture...]",
	Short: "Print the actions dispatched for a sequence of gestures",
	Long: `Build a picker without a terminal, replay the gestures in order and print
every action the store receives, grouped by gesture.

Gestures:
  +1m, -2y, +10d          navigate by months, years or days
  select=2024-01-10       select a date
  hover=2024-01-10        hover a day
  view=month              switch to the day, month or year grid`,
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

type gesture struct {
	label string
	apply func(*datepicker.Container)
}

func runTrace(cmd *cobra.Command, args []string) error {
	gestures := make([]gesture, 0, len(args))
	for _, arg := range args {
		g, err := parseGesture(arg)
		if err != nil {
			return err
		}
		gestures = append(gestures, g)
	}

	opts, err := pickerOptions(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dpOpts, err := app.ContainerOptions(cfg, prefs.Prefs{}, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dpOpts.Observer = func(a datepicker.Action) {
		fmt.Fprintf(out, "  %s\n", a.Kind())
	}

	fmt.Fprintf(out, "startup %s %s\n", dpOpts.ViewDate, dpOpts.ViewMode)
	c, err := datepicker.NewContainer(dpOpts)
	if err != nil {
		return fmt.Errorf("init datepicker: %w", err)
	}
	defer c.Close()

	for _, g := range gestures {
		fmt.Fprintln(out, g.label)
		g.apply(c)
	}
	writeTraceSummary(out, c.Store().State())
	return nil
}

func writeTraceSummary(out io.Writer, st datepicker.State) {
	selected := "none"
	if !st.SelectedDate.IsZero() {
		selected = st.SelectedDate.String()
	}
	fmt.Fprintf(out, "view %s %s, selected %s\n", st.ViewDate, st.ViewMode, selected)
}

func parseGesture(arg string) (gesture, error) {
	if name, value, ok := strings.Cut(arg, "="); ok {
		switch name {
		case "select":
			d, err := calendar.ParseDate(value)
			if err != nil {
				return gesture{}, fmt.Errorf("gesture %q: %w", arg, err)
			}
			return gesture{arg, func(c *datepicker.Container) { c.SetValue(d) }}, nil
		case "hover":
			d, err := calendar.ParseDate(value)
			if err != nil {
				return gesture{}, fmt.Errorf("gesture %q: %w", arg, err)
			}
			return gesture{arg, func(c *datepicker.Container) {
				c.Store().Dispatch(datepicker.HoverDay{Date: d, IsHovered: true})
			}}, nil
		case "view":
			mode, err := datepicker.ParseViewMode(value)
			if err != nil {
				return gesture{}, fmt.Errorf("gesture %q: %w", arg, err)
			}
			return gesture{arg, func(c *datepicker.Container) { c.ChangeViewMode(mode) }}, nil
		}
		return gesture{}, fmt.Errorf("gesture %q: unknown name %q", arg, name)
	}

	step, err := parseStep(arg)
	if err != nil {
		return gesture{}, fmt.Errorf("gesture %q: %w", arg, err)
	}
	return gesture{arg, func(c *datepicker.Container) {
		c.NavigateTo(datepicker.NavigationEvent{Step: step})
	}}, nil
}

// parseStep reads a signed count followed by d, m or y.
func parseStep(s string) (datepicker.Step, error) {
	if len(s) < 2 {
		return datepicker.Step{}, fmt.Errorf("want a count and a unit such as +1m")
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return datepicker.Step{}, fmt.Errorf("count: %w", err)
	}
	switch s[len(s)-1] {
	case 'd':
		return datepicker.Step{Days: n}, nil
	case 'm':
		return datepicker.Step{Months: n}, nil
	case 'y':
		return datepicker.Step{Years: n}, nil
	}
	return datepicker.Step{}, fmt.Errorf("unit must be d, m or y")
}
