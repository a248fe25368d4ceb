package datepicker

import "github.com/five82/datepicker/internal/calendar"

// Field identifies one State field for pipeline wiring.
type Field int

const (
	FieldViewMode Field = iota
	FieldViewDate
	FieldSelectedDate
	FieldHoveredDate
	FieldMonthsModel
	FieldFormattedMonths
	FieldFlaggedMonths
	FieldMonthsCalendar
	FieldFlaggedMonthsCalendar
	FieldYearsCalendarModel
	FieldYearsCalendarFlagged
	FieldRenderOptions
)

var fieldNames = [...]string{
	FieldViewMode:              "viewMode",
	FieldViewDate:              "viewDate",
	FieldSelectedDate:          "selectedDate",
	FieldHoveredDate:           "hoveredDate",
	FieldMonthsModel:           "monthsModel",
	FieldFormattedMonths:       "formattedMonths",
	FieldFlaggedMonths:         "flaggedMonths",
	FieldMonthsCalendar:        "monthsCalendar",
	FieldFlaggedMonthsCalendar: "flaggedMonthsCalendar",
	FieldYearsCalendarModel:    "yearsCalendarModel",
	FieldYearsCalendarFlagged:  "yearsCalendarFlagged",
	FieldRenderOptions:         "renderOptions",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Ready reports whether the field holds a value in s. Unset dates, nil
// calendars and nil options are "not ready".
func (f Field) Ready(s State) bool {
	switch f {
	case FieldViewMode:
		return s.ViewMode != ""
	case FieldViewDate:
		return !s.ViewDate.IsZero()
	case FieldSelectedDate:
		return !s.SelectedDate.IsZero()
	case FieldHoveredDate:
		return !s.HoveredDate.IsZero()
	case FieldMonthsModel:
		return s.MonthsModel != nil
	case FieldFormattedMonths:
		return s.FormattedMonths != nil
	case FieldFlaggedMonths:
		return s.FlaggedMonths != nil
	case FieldMonthsCalendar:
		return s.MonthsCalendar != nil
	case FieldFlaggedMonthsCalendar:
		return s.FlaggedMonthsCalendar != nil
	case FieldYearsCalendarModel:
		return s.YearsCalendarModel != nil
	case FieldYearsCalendarFlagged:
		return s.YearsCalendarFlagged != nil
	case FieldRenderOptions:
		return s.RenderOptions != nil
	default:
		return false
	}
}

// Equal reports whether the field has the same value in a and b.
func (f Field) Equal(a, b State) bool {
	switch f {
	case FieldViewMode:
		return a.ViewMode == b.ViewMode
	case FieldViewDate:
		return a.ViewDate == b.ViewDate
	case FieldSelectedDate:
		return a.SelectedDate == b.SelectedDate
	case FieldHoveredDate:
		return a.HoveredDate == b.HoveredDate
	case FieldMonthsModel:
		return calendar.EqualAll(a.MonthsModel, b.MonthsModel)
	case FieldFormattedMonths:
		return calendar.EqualAll(a.FormattedMonths, b.FormattedMonths)
	case FieldFlaggedMonths:
		return calendar.EqualAll(a.FlaggedMonths, b.FlaggedMonths)
	case FieldMonthsCalendar:
		return calendar.EqualAll(a.MonthsCalendar, b.MonthsCalendar)
	case FieldFlaggedMonthsCalendar:
		return calendar.EqualAll(a.FlaggedMonthsCalendar, b.FlaggedMonthsCalendar)
	case FieldYearsCalendarModel:
		return calendar.EqualAll(a.YearsCalendarModel, b.YearsCalendarModel)
	case FieldYearsCalendarFlagged:
		return calendar.EqualAll(a.YearsCalendarFlagged, b.YearsCalendarFlagged)
	case FieldRenderOptions:
		if a.RenderOptions == nil || b.RenderOptions == nil {
			return a.RenderOptions == b.RenderOptions
		}
		return *a.RenderOptions == *b.RenderOptions
	default:
		return true
	}
}
