package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/datepicker/internal/calendar"
)

// Config captures the datepicker settings read from config.toml.
type Config struct {
	DisplayMonths   int
	ShowWeekNumbers bool
	FirstDayOfWeek  time.Weekday
	ViewMode        string
	LogLevel        slog.Level
	LogDir          string
}

const (
	defaultConfigPath = "~/.config/datepicker/config.toml"
	defaultLogDir     = "~/.local/state/datepicker"
	defaultViewMode   = "day"
	logFileName       = "datepicker.log"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	opts := calendar.DefaultRenderOptions()
	return Config{
		DisplayMonths:   opts.DisplayMonths,
		ShowWeekNumbers: opts.ShowWeekNumbers,
		FirstDayOfWeek:  time.Sunday,
		ViewMode:        defaultViewMode,
		LogLevel:        slog.LevelInfo,
		LogDir:          mustExpand(defaultLogDir),
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DisplayMonths   int    `toml:"display_months"`
		ShowWeekNumbers *bool  `toml:"show_week_numbers"`
		FirstDayOfWeek  string `toml:"first_day_of_week"`
		ViewMode        string `toml:"view_mode"`
		LogLevel        string `toml:"log_level"`
		LogDir          string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.DisplayMonths > 0 {
		cfg.DisplayMonths = raw.DisplayMonths
	}
	if raw.ShowWeekNumbers != nil {
		cfg.ShowWeekNumbers = *raw.ShowWeekNumbers
	}
	if strings.TrimSpace(raw.FirstDayOfWeek) != "" {
		day, err := parseWeekday(raw.FirstDayOfWeek)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.FirstDayOfWeek = day
	}
	if mode := strings.TrimSpace(raw.ViewMode); mode != "" {
		cfg.ViewMode = strings.ToLower(mode)
	}
	if lvl := strings.TrimSpace(raw.LogLevel); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("parse config: log_level: %w", err)
		}
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// RenderOptions returns the calendar render options described by c.
func (c Config) RenderOptions() calendar.RenderOptions {
	return calendar.RenderOptions{
		DisplayMonths:   c.DisplayMonths,
		ShowWeekNumbers: c.ShowWeekNumbers,
	}.Normalized()
}

// LogPath returns the path of the log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func parseWeekday(s string) (time.Weekday, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if want == name || want == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("first_day_of_week: unknown weekday %q", s)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
