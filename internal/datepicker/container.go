package datepicker

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/five82/datepicker/internal/calendar"
)

// NavigationEvent is emitted by the previous/next controls of a grid.
type NavigationEvent struct {
	Step Step
}

// DayHoverEvent reports the pointer entering or leaving a day cell.
type DayHoverEvent struct {
	Day       *calendar.DayViewModel
	IsHovered bool
}

// MonthHoverEvent reports the pointer entering or leaving a month cell.
type MonthHoverEvent struct {
	Month     *calendar.MonthViewModel
	IsHovered bool
}

// YearHoverEvent reports the pointer entering or leaving a year cell.
type YearHoverEvent struct {
	Year      *calendar.YearViewModel
	IsHovered bool
}

// Options configure a Container.
type Options struct {
	// ViewDate is the initially displayed date. Required.
	ViewDate calendar.Date
	// ViewMode defaults to ViewDay.
	ViewMode      ViewMode
	RenderOptions calendar.RenderOptions
	Builder       calendar.Builder
	// Graph defaults to DefaultGraph.
	Graph *Graph
	// OnValueChange receives the selected date once at construction and on
	// every change after that. A zero date means nothing is selected.
	OnValueChange func(calendar.Date)
	Logger        *slog.Logger
	// Observer sees every dispatched action.
	Observer func(Action)
}

// Container binds a Store to a calendar view: it wires the derivation graph
// once and translates gestures into actions.
type Container struct {
	store    *Store
	subs     []*Subscription
	viewMode ViewMode
	logger   *slog.Logger
}

// NewContainer creates the store, dispatches the render options and wires
// the graph, which immediately runs the first calculate/format/flag pass.
func NewContainer(opts Options) (*Container, error) {
	if opts.ViewDate.IsZero() {
		return nil, fmt.Errorf("datepicker: view date is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	graph := DefaultGraph()
	if opts.Graph != nil {
		graph = *opts.Graph
	}
	if err := graph.Validate(); err != nil {
		return nil, fmt.Errorf("datepicker: %w", err)
	}

	initial := InitialState(opts.ViewDate)
	if opts.ViewMode != "" {
		initial.ViewMode = opts.ViewMode
	}
	reducer := Reducer{Builder: opts.Builder}
	c := &Container{
		store:  NewStore(initial, reducer.Reduce, WithLogger(logger), WithObserver(opts.Observer)),
		logger: logger,
	}

	c.store.Dispatch(SetRenderOptions{Options: opts.RenderOptions})

	if opts.OnValueChange != nil {
		c.Value(opts.OnValueChange)
	}

	subs, err := graph.Wire(c.store, func(e Edge, st State) {
		if slices.Contains(e.Watch, FieldViewMode) {
			c.viewMode = st.ViewMode
		}
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("datepicker: %w", err)
	}
	c.subs = append(c.subs, subs...)
	logger.Debug("datepicker wired", "edges", len(graph.Edges), "view_date", opts.ViewDate, "view_mode", c.viewMode)
	return c, nil
}

// Store exposes the underlying store.
func (c *Container) Store() *Store {
	return c.store
}

// ViewMode is the view mode as of the last recalculation.
func (c *Container) ViewMode() ViewMode {
	return c.viewMode
}

// Close removes every subscription the container created.
func (c *Container) Close() {
	for _, sub := range c.subs {
		sub.Unsubscribe()
	}
	c.subs = nil
}

// SetValue selects d as if it had been assigned from outside.
func (c *Container) SetValue(d calendar.Date) {
	c.store.Dispatch(Select{Date: d})
}

// ChangeViewMode switches grids.
func (c *Container) ChangeViewMode(mode ViewMode) {
	c.store.Dispatch(ChangeViewMode{Mode: mode})
}

// NavigateTo shifts the view date by the event's step.
func (c *Container) NavigateTo(event NavigationEvent) {
	c.store.Dispatch(NavigateStep{Step: event.Step})
}

// DayHover records the hovered day and marks the cell right away, ahead of
// the flag pass. Days of adjacent months are ignored.
func (c *Container) DayHover(event DayHoverEvent) {
	if event.Day == nil || event.Day.IsOtherMonth {
		return
	}
	c.store.Dispatch(HoverDay{Date: event.Day.Date, IsHovered: event.IsHovered})
	event.Day.IsHovered = event.IsHovered
}

// MonthHover marks the cell only; month hover has no selection meaning.
func (c *Container) MonthHover(event MonthHoverEvent) {
	if event.Month != nil {
		event.Month.IsHovered = event.IsHovered
	}
}

// YearHover marks the cell only; year hover has no selection meaning.
func (c *Container) YearHover(event YearHoverEvent) {
	if event.Year != nil {
		event.Year.IsHovered = event.IsHovered
	}
}

// DaySelect selects the day unless it belongs to an adjacent month.
func (c *Container) DaySelect(day *calendar.DayViewModel) {
	if day == nil || day.IsOtherMonth {
		return
	}
	c.store.Dispatch(Select{Date: day.Date})
}

// MonthSelect opens the day grid of the chosen month.
func (c *Container) MonthSelect(month *calendar.MonthViewModel) {
	if month == nil {
		return
	}
	c.store.Dispatch(NavigateTo{Target: NavigationTarget{
		Unit:     Unit{Month: month.Date.Month},
		ViewMode: ViewDay,
	}})
}

// YearSelect opens the month grid of the chosen year.
func (c *Container) YearSelect(year *calendar.YearViewModel) {
	if year == nil {
		return
	}
	c.store.Dispatch(NavigateTo{Target: NavigationTarget{
		Unit:     Unit{Year: year.Date.Year},
		ViewMode: ViewMonth,
	}})
}

// DaysCalendar delivers a private copy of every new flagged day grid.
func (c *Container) DaysCalendar(fn func([]calendar.DaysCalendarViewModel)) *Subscription {
	return c.track(observeCalendars(c.store, flaggedMonths, fn))
}

// MonthsCalendar delivers a private copy of every new flagged months grid.
func (c *Container) MonthsCalendar(fn func([]calendar.MonthsCalendarViewModel)) *Subscription {
	return c.track(observeCalendars(c.store, flaggedMonthsCalendar, fn))
}

// YearsCalendar delivers a private copy of every new flagged years grid.
func (c *Container) YearsCalendar(fn func([]calendar.YearsCalendarViewModel)) *Subscription {
	return c.track(observeCalendars(c.store, yearsCalendarFlagged, fn))
}

// Value delivers the selected date now and on every change.
func (c *Container) Value(fn func(calendar.Date)) *Subscription {
	return c.track(Observe(c.store, selectedDate, Equals[calendar.Date], fn))
}

// RenderOptions delivers the render options once they are set.
func (c *Container) RenderOptions(fn func(calendar.RenderOptions)) *Subscription {
	return c.track(Observe(c.store, optionsOf, Equals[*calendar.RenderOptions], func(o *calendar.RenderOptions) {
		if o != nil {
			fn(*o)
		}
	}))
}

func (c *Container) track(sub *Subscription) *Subscription {
	c.subs = append(c.subs, sub)
	return sub
}

type calendarShape[T any] interface {
	calendar.Equaler[T]
	calendar.Cloner[T]
}

func observeCalendars[T calendarShape[T]](s *Store, project func(State) []T, fn func([]T)) *Subscription {
	return Observe(s, project, calendar.EqualAll[T], func(v []T) {
		if v != nil {
			fn(calendar.CloneAll(v))
		}
	})
}

func selectedDate(s State) calendar.Date                               { return s.SelectedDate }
func flaggedMonths(s State) []calendar.DaysCalendarViewModel           { return s.FlaggedMonths }
func flaggedMonthsCalendar(s State) []calendar.MonthsCalendarViewModel { return s.FlaggedMonthsCalendar }
func yearsCalendarFlagged(s State) []calendar.YearsCalendarViewModel   { return s.YearsCalendarFlagged }
func optionsOf(s State) *calendar.RenderOptions                        { return s.RenderOptions }
