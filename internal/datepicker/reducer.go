package datepicker

import (
	"github.com/five82/datepicker/internal/calendar"
)

// Reducer computes the next State for an action. It never mutates its input
// and falls back to the zero Builder when none is configured.
type Reducer struct {
	Builder calendar.Builder
}

// Reduce applies a to s. Unknown actions return s unchanged.
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Select:
		s.SelectedDate = a.Date
		if !a.Date.IsZero() && !s.showsDate(a.Date) {
			s.ViewDate = a.Date
		}

	case ChangeViewMode:
		s.ViewMode = a.Mode

	case NavigateStep:
		s.ViewDate = shift(s.ViewDate, a.Step)

	case NavigateTo:
		s.ViewDate = setUnit(s.ViewDate, a.Target.Unit)
		if a.Target.ViewMode != "" {
			s.ViewMode = a.Target.ViewMode
		}

	case HoverDay:
		if a.IsHovered {
			s.HoveredDate = a.Date
		} else {
			s.HoveredDate = calendar.Date{}
		}

	case Calculate:
		n := s.displayMonths()
		s.MonthsModel = r.Builder.Days(s.ViewDate, n)
		s.MonthsCalendar = r.Builder.Months(s.ViewDate, n)
		s.YearsCalendarModel = r.Builder.Years(s.ViewDate, n)

	case Format:
		if s.MonthsModel == nil {
			return s
		}
		s.FormattedMonths = calendar.Format(s.MonthsModel, s.renderOptions())

	case Flag:
		if s.FormattedMonths != nil {
			s.FlaggedMonths = calendar.FlagDays(s.FormattedMonths, s.SelectedDate, s.HoveredDate)
		}
		if s.MonthsCalendar != nil {
			s.FlaggedMonthsCalendar = calendar.FlagMonths(s.MonthsCalendar, s.SelectedDate)
		}
		if s.YearsCalendarModel != nil {
			s.YearsCalendarFlagged = calendar.FlagYears(s.YearsCalendarModel, s.SelectedDate)
		}

	case SetRenderOptions:
		opts := a.Options.Normalized()
		s.RenderOptions = &opts
	}
	return s
}

func (s State) renderOptions() calendar.RenderOptions {
	if s.RenderOptions == nil {
		return calendar.RenderOptions{DisplayMonths: 1}
	}
	return *s.RenderOptions
}

func shift(d calendar.Date, step Step) calendar.Date {
	return d.AddYears(step.Years).AddMonths(step.Months).AddDays(step.Days)
}

func setUnit(d calendar.Date, u Unit) calendar.Date {
	year, month, day := d.Year, d.Month, d.Day
	if u.Year != 0 {
		year = u.Year
	}
	if u.Month != 0 {
		month = u.Month
	}
	if u.Day != 0 {
		day = u.Day
	}
	return calendar.Date{Year: year, Month: month, Day: min(day, calendar.DaysIn(year, month))}
}
