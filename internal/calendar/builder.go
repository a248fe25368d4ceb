package calendar

import (
	"strconv"
	"time"
)

const (
	weeksPerMonth    = 6
	daysPerWeek      = 7
	monthsPerRow     = 3
	yearsPerRow      = 4
	YearsPerCalendar = 16
)

// Builder turns a view date into raw calendar grids.
type Builder struct {
	FirstDayOfWeek time.Weekday
}

// Days returns one 6x7 day matrix per displayed month, starting with the
// month of viewDate.
func (b Builder) Days(viewDate Date, displayMonths int) []DaysCalendarModel {
	displayMonths = max(displayMonths, 1)
	models := make([]DaysCalendarModel, 0, displayMonths)
	for i := range displayMonths {
		month := viewDate.FirstOfMonth().AddMonths(i)
		models = append(models, DaysCalendarModel{
			Month: month,
			Weeks: b.dayMatrix(month),
		})
	}
	return models
}

func (b Builder) dayMatrix(first Date) [][]Date {
	offset := (int(first.Weekday()) - int(b.FirstDayOfWeek) + daysPerWeek) % daysPerWeek
	day := first.AddDays(-offset)

	weeks := make([][]Date, weeksPerMonth)
	for w := range weeks {
		week := make([]Date, daysPerWeek)
		for d := range week {
			week[d] = day
			day = day.AddDays(1)
		}
		weeks[w] = week
	}
	return weeks
}

// Months returns one calendar of twelve months per displayed year, starting
// with the year of viewDate.
func (b Builder) Months(viewDate Date, count int) []MonthsCalendarViewModel {
	count = max(count, 1)
	cals := make([]MonthsCalendarViewModel, 0, count)
	for i := range count {
		year := viewDate.Year + i
		rows := make([][]MonthViewModel, 0, 12/monthsPerRow)
		for r := range 12 / monthsPerRow {
			row := make([]MonthViewModel, monthsPerRow)
			for c := range row {
				month := time.Month(r*monthsPerRow + c + 1)
				row[c] = MonthViewModel{
					Date:  Date{Year: year, Month: month, Day: 1},
					Label: month.String()[:3],
				}
			}
			rows = append(rows, row)
		}
		cals = append(cals, MonthsCalendarViewModel{
			Year:   Date{Year: year, Month: time.January, Day: 1},
			Title:  strconv.Itoa(year),
			Months: rows,
		})
	}
	return cals
}

// Years returns one window of sixteen years per displayed calendar. The year
// of viewDate always sits in the second row of the first window.
func (b Builder) Years(viewDate Date, count int) []YearsCalendarViewModel {
	count = max(count, 1)
	start := YearsWindowStart(viewDate.Year)
	cals := make([]YearsCalendarViewModel, 0, count)
	for i := range count {
		first := start + i*YearsPerCalendar
		rows := make([][]YearViewModel, 0, YearsPerCalendar/yearsPerRow)
		for r := range YearsPerCalendar / yearsPerRow {
			row := make([]YearViewModel, yearsPerRow)
			for c := range row {
				year := first + r*yearsPerRow + c
				row[c] = YearViewModel{
					Date:  Date{Year: year, Month: time.January, Day: 1},
					Label: strconv.Itoa(year),
				}
			}
			rows = append(rows, row)
		}
		cals = append(cals, YearsCalendarViewModel{
			Title: strconv.Itoa(first) + " - " + strconv.Itoa(first+YearsPerCalendar-1),
			Years: rows,
		})
	}
	return cals
}

// YearsWindowStart returns the first year of the window that displays year.
func YearsWindowStart(year int) int {
	return year - YearsPerCalendar/2 + 1
}
