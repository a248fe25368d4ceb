package calendar

// FlagDays returns a copy of cals with selection and hover marked. Days of
// adjacent months are never flagged.
func FlagDays(cals []DaysCalendarViewModel, selected, hovered Date) []DaysCalendarViewModel {
	out := CloneAll(cals)
	for i := range out {
		for w := range out[i].Weeks {
			days := out[i].Weeks[w].Days
			for d := range days {
				day := &days[d]
				day.IsSelected = !day.IsOtherMonth && !selected.IsZero() && day.Date == selected
				day.IsHovered = !day.IsOtherMonth && !hovered.IsZero() && day.Date == hovered
			}
		}
	}
	return out
}

// FlagMonths returns a copy of cals with the month holding selected marked.
func FlagMonths(cals []MonthsCalendarViewModel, selected Date) []MonthsCalendarViewModel {
	out := CloneAll(cals)
	for i := range out {
		for _, row := range out[i].Months {
			for c := range row {
				row[c].IsSelected = !selected.IsZero() && row[c].Date.SameMonth(selected)
			}
		}
	}
	return out
}

// FlagYears returns a copy of cals with the year holding selected marked.
func FlagYears(cals []YearsCalendarViewModel, selected Date) []YearsCalendarViewModel {
	out := CloneAll(cals)
	for i := range out {
		for _, row := range out[i].Years {
			for c := range row {
				row[c].IsSelected = !selected.IsZero() && row[c].Date.Year == selected.Year
			}
		}
	}
	return out
}
