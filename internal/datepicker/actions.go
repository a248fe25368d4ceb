package datepicker

import (
	"time"

	"github.com/five82/datepicker/internal/calendar"
)

// Kind names an action. The set is closed: these are the only triggers that
// mutate State.
type Kind string

const (
	KindSelect         Kind = "select"
	KindChangeViewMode Kind = "changeViewMode"
	KindNavigateStep   Kind = "navigateStep"
	KindNavigateTo     Kind = "navigateTo"
	KindHoverDay       Kind = "hoverDay"
	KindCalculate      Kind = "calculate"
	KindFormat         Kind = "format"
	KindFlag           Kind = "flag"
	KindRenderOptions  Kind = "renderOptions"
)

var kindWrites = map[Kind][]Field{
	KindSelect:         {FieldSelectedDate, FieldViewDate},
	KindChangeViewMode: {FieldViewMode},
	KindNavigateStep:   {FieldViewDate},
	KindNavigateTo:     {FieldViewDate, FieldViewMode},
	KindHoverDay:       {FieldHoveredDate},
	KindCalculate:      {FieldMonthsModel, FieldMonthsCalendar, FieldYearsCalendarModel},
	KindFormat:         {FieldFormattedMonths},
	KindFlag:           {FieldFlaggedMonths, FieldFlaggedMonthsCalendar, FieldYearsCalendarFlagged},
	KindRenderOptions:  {FieldRenderOptions},
}

// Writes lists the state fields an action of this kind may change.
func (k Kind) Writes() []Field {
	return kindWrites[k]
}

// Action is an intent submitted to Store.Dispatch.
type Action interface {
	Kind() Kind
}

// Step is a relative move of the view date.
type Step struct {
	Days   int
	Months int
	Years  int
}

// Unit sets absolute components of the view date. Zero fields are left as is.
type Unit struct {
	Year  int
	Month time.Month
	Day   int
}

// NavigationTarget moves the view date and switches the view mode at once.
type NavigationTarget struct {
	Unit     Unit
	ViewMode ViewMode
}

type (
	// Select makes Date the selected date.
	Select struct{ Date calendar.Date }
	// ChangeViewMode switches between day, month and year grids.
	ChangeViewMode struct{ Mode ViewMode }
	// NavigateStep shifts the view date.
	NavigateStep struct{ Step Step }
	// NavigateTo jumps to a unit and view mode.
	NavigateTo struct{ Target NavigationTarget }
	// HoverDay records the day under the pointer; IsHovered false clears it.
	HoverDay struct {
		Date      calendar.Date
		IsHovered bool
	}
	// Calculate rebuilds the raw calendars from the view date.
	Calculate struct{}
	// Format turns the raw day matrices into view models.
	Format struct{}
	// Flag annotates the calendars with selection and hover.
	Flag struct{}
	// SetRenderOptions replaces the render options.
	SetRenderOptions struct{ Options calendar.RenderOptions }
)

func (Select) Kind() Kind           { return KindSelect }
func (ChangeViewMode) Kind() Kind   { return KindChangeViewMode }
func (NavigateStep) Kind() Kind     { return KindNavigateStep }
func (NavigateTo) Kind() Kind       { return KindNavigateTo }
func (HoverDay) Kind() Kind         { return KindHoverDay }
func (Calculate) Kind() Kind        { return KindCalculate }
func (Format) Kind() Kind           { return KindFormat }
func (Flag) Kind() Kind             { return KindFlag }
func (SetRenderOptions) Kind() Kind { return KindRenderOptions }

// trigger returns the payload-free action a pipeline edge can fire.
func trigger(k Kind) (Action, bool) {
	switch k {
	case KindCalculate:
		return Calculate{}, true
	case KindFormat:
		return Format{}, true
	case KindFlag:
		return Flag{}, true
	default:
		return nil, false
	}
}
