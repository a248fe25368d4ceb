package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/datepicker/internal/calendar"
	"github.com/five82/datepicker/internal/config"
	"github.com/five82/datepicker/internal/datepicker"
	"github.com/five82/datepicker/internal/prefs"
)

func TestContainerOptions_OverridesWinOverPrefsAndConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ViewMode = "year"
	cfg.FirstDayOfWeek = time.Monday
	off := false

	got, err := ContainerOptions(cfg, prefs.Prefs{ViewMode: "month"}, Options{
		Date:          calendar.NewDate(2024, time.March, 3),
		DisplayMonths: 3,
		WeekNumbers:   &off,
	})
	if err != nil {
		t.Fatalf("ContainerOptions returned error: %v", err)
	}
	if got.ViewMode != datepicker.ViewMonth {
		t.Fatalf("ViewMode = %q, want prefs value month", got.ViewMode)
	}
	if got.ViewDate != calendar.NewDate(2024, time.March, 3) {
		t.Fatalf("ViewDate = %v, want 2024-03-03", got.ViewDate)
	}
	if got.RenderOptions.DisplayMonths != 3 || got.RenderOptions.ShowWeekNumbers {
		t.Fatalf("RenderOptions = %+v, want 3 months without week numbers", got.RenderOptions)
	}
	if got.Builder.FirstDayOfWeek != time.Monday {
		t.Fatalf("FirstDayOfWeek = %v, want Monday", got.Builder.FirstDayOfWeek)
	}

	got, err = ContainerOptions(cfg, prefs.Prefs{ViewMode: "month"}, Options{ViewMode: "day"})
	if err != nil {
		t.Fatalf("ContainerOptions returned error: %v", err)
	}
	if got.ViewMode != datepicker.ViewDay {
		t.Fatalf("ViewMode = %q, want command line value day", got.ViewMode)
	}
	if got.ViewDate.IsZero() {
		t.Fatalf("ViewDate is zero, want today")
	}
}

func TestContainerOptions_InvalidViewModeFails(t *testing.T) {
	_, err := ContainerOptions(config.Default(), prefs.Prefs{}, Options{ViewMode: "week"})
	if err == nil {
		t.Fatalf("ContainerOptions returned nil error, want error")
	}
	if !strings.Contains(err.Error(), "view mode") {
		t.Fatalf("error = %q, want it to mention view mode", err.Error())
	}
}

func TestContainerOptions_BuildsWorkingContainer(t *testing.T) {
	opts, err := ContainerOptions(config.Default(), prefs.Prefs{}, Options{Date: calendar.NewDate(2024, time.May, 5)})
	if err != nil {
		t.Fatalf("ContainerOptions returned error: %v", err)
	}
	c, err := datepicker.NewContainer(opts)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer c.Close()

	st := c.Store().State()
	if len(st.FlaggedMonths) != 1 || st.FlaggedMonths[0].Month.Month != time.May {
		t.Fatalf("FlaggedMonths = %+v, want May 2024", st.FlaggedMonths)
	}
}

func TestOpenLogger_WritesAtConfiguredLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogDir = filepath.Join(t.TempDir(), "nested", "logs")
	cfg.LogLevel = slog.LevelWarn

	logger, closeLog, err := OpenLogger(cfg)
	if err != nil {
		t.Fatalf("OpenLogger returned error: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud", "date", "2024-01-02")
	closeLog()

	data, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "quiet") {
		t.Fatalf("log contains info record below the configured level:\n%s", out)
	}
	if !strings.Contains(out, "msg=loud") || !strings.Contains(out, "date=2024-01-02") {
		t.Fatalf("log missing warn record:\n%s", out)
	}
}
