// Package calendar builds, formats and flags the calendar grids shown by the
// datepicker.
//
// # Overview
//
// The package holds the collaborators the datepicker store calls from its
// reducer. Each stage is a pure function of its inputs:
//
//	view date ──Builder.Days──→ []DaysCalendarModel       (raw 6x7 matrices)
//	          ──Format───────→ []DaysCalendarViewModel    (titles, labels)
//	          ──FlagDays─────→ []DaysCalendarViewModel    (selected/hovered)
//
//	view date ──Builder.Months─→ []MonthsCalendarViewModel ──FlagMonths─→ ...
//	view date ──Builder.Years──→ []YearsCalendarViewModel  ──FlagYears──→ ...
//
// Months and years calendars are produced already formatted; only the day
// view has a separate formatting stage.
//
// # Dates
//
// Date is a plain year/month/day triple. It is comparable with ==, and its
// zero value stands for "no date", which is how optional dates (selection,
// hover) are represented throughout the picker.
//
// # Equality and copies
//
// Every calendar shape implements Equal and Clone. Stages never mutate their
// input: flagging always works on a deep copy, so a caller holding an older
// calendar sees no change. EqualAll treats nil as "not computed yet" and
// never equal to an empty, computed list.
package calendar
