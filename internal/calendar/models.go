package calendar

import "slices"

// RenderOptions configure how many months are shown and whether week numbers
// are rendered.
type RenderOptions struct {
	DisplayMonths   int  `toml:"display_months"`
	ShowWeekNumbers bool `toml:"show_week_numbers"`
}

// DefaultRenderOptions matches what a freshly mounted picker dispatches.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{DisplayMonths: 1, ShowWeekNumbers: true}
}

// Normalized clamps DisplayMonths to at least one.
func (o RenderOptions) Normalized() RenderOptions {
	if o.DisplayMonths < 1 {
		o.DisplayMonths = 1
	}
	return o
}

// DaysCalendarModel is the raw 6x7 day matrix of one month.
type DaysCalendarModel struct {
	Month Date
	Weeks [][]Date
}

// DayViewModel is one cell of a days calendar.
type DayViewModel struct {
	Date         Date
	Label        string
	IsOtherMonth bool
	IsHovered    bool
	IsSelected   bool
}

// WeekViewModel is one row of a days calendar.
type WeekViewModel struct {
	Number string
	Days   []DayViewModel
}

// DaysCalendarViewModel is a formatted (and possibly flagged) month.
type DaysCalendarViewModel struct {
	Month        Date
	MonthTitle   string
	YearTitle    string
	WeekdayNames []string
	Weeks        []WeekViewModel
}

// MonthViewModel is one cell of a months calendar.
type MonthViewModel struct {
	Date       Date
	Label      string
	IsHovered  bool
	IsSelected bool
}

// MonthsCalendarViewModel holds the twelve months of one year in rows of three.
type MonthsCalendarViewModel struct {
	Year   Date
	Title  string
	Months [][]MonthViewModel
}

// YearViewModel is one cell of a years calendar.
type YearViewModel struct {
	Date       Date
	Label      string
	IsHovered  bool
	IsSelected bool
}

// YearsCalendarViewModel holds a window of sixteen years in rows of four.
type YearsCalendarViewModel struct {
	Title string
	Years [][]YearViewModel
}

// Equal reports whether both models describe the same matrix.
func (m DaysCalendarModel) Equal(o DaysCalendarModel) bool {
	return m.Month == o.Month && equalRows(m.Weeks, o.Weeks)
}

// Equal reports whether both weeks hold identical cells.
func (w WeekViewModel) Equal(o WeekViewModel) bool {
	return w.Number == o.Number && slices.Equal(w.Days, o.Days)
}

// Equal compares titles, headers and every cell including flags.
func (c DaysCalendarViewModel) Equal(o DaysCalendarViewModel) bool {
	return c.Month == o.Month &&
		c.MonthTitle == o.MonthTitle &&
		c.YearTitle == o.YearTitle &&
		slices.Equal(c.WeekdayNames, o.WeekdayNames) &&
		slices.EqualFunc(c.Weeks, o.Weeks, WeekViewModel.Equal)
}

// Equal compares the title and every cell including flags.
func (c MonthsCalendarViewModel) Equal(o MonthsCalendarViewModel) bool {
	return c.Year == o.Year && c.Title == o.Title && equalRows(c.Months, o.Months)
}

// Equal compares the title and every cell including flags.
func (c YearsCalendarViewModel) Equal(o YearsCalendarViewModel) bool {
	return c.Title == o.Title && equalRows(c.Years, o.Years)
}

// Clone returns a deep copy.
func (m DaysCalendarModel) Clone() DaysCalendarModel {
	m.Weeks = cloneRows(m.Weeks)
	return m
}

// Clone returns a deep copy, so hover flags can be set on it without
// touching the original.
func (c DaysCalendarViewModel) Clone() DaysCalendarViewModel {
	c.WeekdayNames = slices.Clone(c.WeekdayNames)
	if c.Weeks != nil {
		weeks := make([]WeekViewModel, len(c.Weeks))
		for i, w := range c.Weeks {
			weeks[i] = WeekViewModel{Number: w.Number, Days: slices.Clone(w.Days)}
		}
		c.Weeks = weeks
	}
	return c
}

// Clone returns a deep copy.
func (c MonthsCalendarViewModel) Clone() MonthsCalendarViewModel {
	c.Months = cloneRows(c.Months)
	return c
}

// Clone returns a deep copy.
func (c YearsCalendarViewModel) Clone() YearsCalendarViewModel {
	c.Years = cloneRows(c.Years)
	return c
}

// Equaler is implemented by every calendar shape.
type Equaler[T any] interface {
	Equal(T) bool
}

// EqualAll compares two calendar lists element by element. A nil list only
// equals another nil list, so "not computed" never matches "computed empty".
func EqualAll[T Equaler[T]](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.EqualFunc(a, b, func(x, y T) bool { return x.Equal(y) })
}

// Cloner is implemented by every calendar shape.
type Cloner[T any] interface {
	Clone() T
}

// CloneAll deep-copies a calendar list, preserving nil.
func CloneAll[T Cloner[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func equalRows[T comparable](a, b [][]T) bool {
	return slices.EqualFunc(a, b, func(x, y []T) bool { return slices.Equal(x, y) })
}

func cloneRows[T any](rows [][]T) [][]T {
	if rows == nil {
		return nil
	}
	out := make([][]T, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}
