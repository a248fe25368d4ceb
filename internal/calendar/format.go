package calendar

import (
	"strconv"
	"time"
)

// Format turns raw day matrices into view models with titles, weekday
// headers, day labels and, when requested, ISO week numbers.
func Format(models []DaysCalendarModel, opts RenderOptions) []DaysCalendarViewModel {
	if models == nil {
		return nil
	}
	out := make([]DaysCalendarViewModel, 0, len(models))
	for _, m := range models {
		out = append(out, formatMonth(m, opts))
	}
	return out
}

func formatMonth(m DaysCalendarModel, opts RenderOptions) DaysCalendarViewModel {
	vm := DaysCalendarViewModel{
		Month:      m.Month,
		MonthTitle: m.Month.Month.String(),
		YearTitle:  strconv.Itoa(m.Month.Year),
		Weeks:      make([]WeekViewModel, 0, len(m.Weeks)),
	}
	if len(m.Weeks) > 0 {
		vm.WeekdayNames = make([]string, 0, len(m.Weeks[0]))
		for _, d := range m.Weeks[0] {
			vm.WeekdayNames = append(vm.WeekdayNames, d.Weekday().String()[:2])
		}
	}

	for _, week := range m.Weeks {
		row := WeekViewModel{Days: make([]DayViewModel, 0, len(week))}
		if opts.ShowWeekNumbers {
			row.Number = weekNumber(week)
		}
		for _, d := range week {
			row.Days = append(row.Days, DayViewModel{
				Date:         d,
				Label:        strconv.Itoa(d.Day),
				IsOtherMonth: !d.SameMonth(m.Month),
			})
		}
		vm.Weeks = append(vm.Weeks, row)
	}
	return vm
}

// weekNumber labels a row with the ISO week of its Thursday, which is the
// ISO week most of the row belongs to whatever day the row starts on.
func weekNumber(week []Date) string {
	for _, d := range week {
		if d.Weekday() == time.Thursday {
			_, w := d.Time().ISOWeek()
			return strconv.Itoa(w)
		}
	}
	return ""
}
