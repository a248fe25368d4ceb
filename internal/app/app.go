package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/datepicker/internal/calendar"
	"github.com/five82/datepicker/internal/config"
	"github.com/five82/datepicker/internal/datepicker"
	"github.com/five82/datepicker/internal/prefs"
	"github.com/five82/datepicker/internal/ui"
)

// Options configure the datepicker application. Zero values fall back to
// the config file, then to prefs, then to built-in defaults.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/datepicker/prefs.toml

	Date          calendar.Date // initial view date; zero uses today
	ViewMode      string
	DisplayMonths int
	WeekNumbers   *bool
}

// Run boots the picker TUI and returns the date selected when the user quit.
// A zero date means nothing was selected.
func Run(ctx context.Context, opts Options) (calendar.Date, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, closeLog, err := OpenLogger(cfg)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("open log: %w", err)
	}
	defer closeLog()
	logger = logger.With("session", uuid.NewString())

	dpOpts, err := ContainerOptions(cfg, userPrefs, opts)
	if err != nil {
		return calendar.Date{}, err
	}
	dpOpts.Logger = logger
	dpOpts.OnValueChange = func(d calendar.Date) {
		if !d.IsZero() {
			logger.Info("date selected", "date", d.String())
		}
	}

	container, err := datepicker.NewContainer(dpOpts)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("init datepicker: %w", err)
	}
	defer container.Close()

	logger.Info("datepicker started",
		"view_date", dpOpts.ViewDate.String(),
		"view_mode", dpOpts.ViewMode,
		"display_months", dpOpts.RenderOptions.DisplayMonths,
	)

	model := ui.New(ui.Options{
		Container: container,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})

	final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("datepicker interrupted")
			return calendar.Date{}, nil
		}
		return calendar.Date{}, fmt.Errorf("run ui: %w", err)
	}

	m, ok := final.(ui.Model)
	if !ok {
		return calendar.Date{}, nil
	}
	return m.Value(), nil
}

// ContainerOptions resolves the picker options from config, prefs and the
// command line overrides in opts. Logger and callbacks are left to the caller.
func ContainerOptions(cfg config.Config, p prefs.Prefs, opts Options) (datepicker.Options, error) {
	viewDate := opts.Date
	if viewDate.IsZero() {
		viewDate = calendar.Today()
	}

	modeName := cfg.ViewMode
	if p.ViewMode != "" {
		modeName = p.ViewMode
	}
	if opts.ViewMode != "" {
		modeName = opts.ViewMode
	}
	mode, err := datepicker.ParseViewMode(modeName)
	if err != nil {
		return datepicker.Options{}, fmt.Errorf("view mode: %w", err)
	}

	render := cfg.RenderOptions()
	if opts.DisplayMonths > 0 {
		render.DisplayMonths = opts.DisplayMonths
	}
	if opts.WeekNumbers != nil {
		render.ShowWeekNumbers = *opts.WeekNumbers
	}

	return datepicker.Options{
		ViewDate:      viewDate,
		ViewMode:      mode,
		RenderOptions: render,
		Builder:       calendar.Builder{FirstDayOfWeek: cfg.FirstDayOfWeek},
	}, nil
}

// OpenLogger opens the log file named by cfg and returns a text logger at the
// configured level. The returned func closes the file.
func OpenLogger(cfg config.Config) (*slog.Logger, func(), error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler), func() { _ = file.Close() }, nil
}
