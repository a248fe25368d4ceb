package datepicker

import (
	"fmt"
	"strings"

	"github.com/five82/datepicker/internal/calendar"
)

// ViewMode selects which calendar grid is shown.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewMonth ViewMode = "month"
	ViewYear  ViewMode = "year"
)

// ParseViewMode accepts day, month or year (case-insensitive).
func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ViewDay, ViewMonth, ViewYear:
		return m, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// State is the single record owned by a Store. Calendar-shaped fields stay
// nil until their upstream has been computed at least once.
type State struct {
	ViewMode     ViewMode
	ViewDate     calendar.Date
	SelectedDate calendar.Date
	HoveredDate  calendar.Date

	MonthsModel     []calendar.DaysCalendarModel
	FormattedMonths []calendar.DaysCalendarViewModel
	FlaggedMonths   []calendar.DaysCalendarViewModel

	MonthsCalendar        []calendar.MonthsCalendarViewModel
	FlaggedMonthsCalendar []calendar.MonthsCalendarViewModel

	YearsCalendarModel   []calendar.YearsCalendarViewModel
	YearsCalendarFlagged []calendar.YearsCalendarViewModel

	RenderOptions *calendar.RenderOptions
}

// InitialState returns a day-view state positioned on viewDate.
func InitialState(viewDate calendar.Date) State {
	return State{ViewMode: ViewDay, ViewDate: viewDate}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.MonthsModel = calendar.CloneAll(s.MonthsModel)
	s.FormattedMonths = calendar.CloneAll(s.FormattedMonths)
	s.FlaggedMonths = calendar.CloneAll(s.FlaggedMonths)
	s.MonthsCalendar = calendar.CloneAll(s.MonthsCalendar)
	s.FlaggedMonthsCalendar = calendar.CloneAll(s.FlaggedMonthsCalendar)
	s.YearsCalendarModel = calendar.CloneAll(s.YearsCalendarModel)
	s.YearsCalendarFlagged = calendar.CloneAll(s.YearsCalendarFlagged)
	if s.RenderOptions != nil {
		opts := *s.RenderOptions
		s.RenderOptions = &opts
	}
	return s
}

// displayMonths falls back to a single month until options are set.
func (s State) displayMonths() int {
	if s.RenderOptions == nil {
		return 1
	}
	return s.RenderOptions.Normalized().DisplayMonths
}

// showsDate reports whether d falls inside the months currently displayed.
func (s State) showsDate(d calendar.Date) bool {
	first := s.ViewDate.FirstOfMonth()
	last := first.AddMonths(s.displayMonths() - 1)
	m := d.FirstOfMonth()
	return !m.Before(first) && !last.Before(m)
}
