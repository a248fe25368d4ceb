package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/datepicker/internal/calendar"
)

type recorder struct {
	kinds []Kind
}

func (r *recorder) observe(a Action) { r.kinds = append(r.kinds, a.Kind()) }

func (r *recorder) reset() { r.kinds = nil }

func (r *recorder) count(k Kind) int {
	n := 0
	for _, got := range r.kinds {
		if got == k {
			n++
		}
	}
	return n
}

func newTestContainer(t *testing.T, opts Options) (*Container, *recorder) {
	t.Helper()
	rec := &recorder{}
	if opts.ViewDate.IsZero() {
		opts.ViewDate = calendar.NewDate(2024, time.January, 1)
	}
	if opts.RenderOptions.DisplayMonths == 0 {
		opts.RenderOptions = calendar.DefaultRenderOptions()
	}
	opts.Observer = rec.observe
	c, err := NewContainer(opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, rec
}

func assertPrimed(t *testing.T, s State) {
	t.Helper()
	assert.NotNil(t, s.FlaggedMonths, "flaggedMonths")
	assert.NotNil(t, s.FlaggedMonthsCalendar, "flaggedMonthsCalendar")
	assert.NotNil(t, s.YearsCalendarFlagged, "yearsCalendarFlagged")
}

func firstDay(t *testing.T, cals []calendar.DaysCalendarViewModel, want func(calendar.DayViewModel) bool) *calendar.DayViewModel {
	t.Helper()
	for i := range cals {
		for w := range cals[i].Weeks {
			for d := range cals[i].Weeks[w].Days {
				if want(cals[i].Weeks[w].Days[d]) {
					return &cals[i].Weeks[w].Days[d]
				}
			}
		}
	}
	t.Fatalf("no matching day")
	return nil
}

func TestNewContainer_StartupReachesFixedPoint(t *testing.T) {
	c, rec := newTestContainer(t, Options{})

	assert.Equal(t, []Kind{KindRenderOptions, KindCalculate, KindFormat, KindFlag, KindFlag, KindFlag}, rec.kinds)
	assertPrimed(t, c.Store().State())
	assert.Equal(t, ViewDay, c.ViewMode())
}

func TestNewContainer_RequiresViewDate(t *testing.T) {
	_, err := NewContainer(Options{})
	assert.Error(t, err)
}

func TestNewContainer_RejectsCyclicGraph(t *testing.T) {
	g := DefaultGraph()
	g.Edges = append(g.Edges, Edge{Name: "loop", Watch: []Field{FieldFlaggedMonths}, Fire: KindCalculate})

	_, err := NewContainer(Options{ViewDate: calendar.NewDate(2024, time.January, 1), Graph: &g})
	assert.ErrorIs(t, err, ErrCyclicGraph)
}

func TestNavigateStep_RunsEachStageOnce(t *testing.T) {
	c, rec := newTestContainer(t, Options{})
	rec.reset()

	c.NavigateTo(NavigationEvent{Step: Step{Months: 1}})

	assert.Equal(t, []Kind{KindNavigateStep, KindCalculate, KindFormat, KindFlag}, rec.kinds)
	st := c.Store().State()
	assert.Equal(t, calendar.NewDate(2024, time.February, 1), st.ViewDate)
	assert.Equal(t, time.February, st.FlaggedMonths[0].Month.Month)
}

func TestNavigation_FixedPointAcrossViewModes(t *testing.T) {
	c, _ := newTestContainer(t, Options{})

	steps := []func(){
		func() { c.NavigateTo(NavigationEvent{Step: Step{Months: -13}}) },
		func() { c.ChangeViewMode(ViewMonth) },
		func() { c.NavigateTo(NavigationEvent{Step: Step{Years: 1}}) },
		func() { c.ChangeViewMode(ViewYear) },
		func() { c.NavigateTo(NavigationEvent{Step: Step{Years: -calendar.YearsPerCalendar}}) },
		func() { c.ChangeViewMode(ViewDay) },
	}
	for _, step := range steps {
		step()
		assertPrimed(t, c.Store().State())
	}
	assert.Equal(t, ViewDay, c.ViewMode())
}

func TestSelect_SameDateIsIdempotent(t *testing.T) {
	c, rec := newTestContainer(t, Options{})
	day := calendar.NewDate(2024, time.January, 10)

	rec.reset()
	c.SetValue(day)
	assert.Equal(t, []Kind{KindSelect, KindFlag}, rec.kinds, "in-view selection must not recalculate")

	rec.reset()
	c.SetValue(day)
	assert.Equal(t, []Kind{KindSelect}, rec.kinds)

	flagged := c.Store().State().FlaggedMonths
	sel := firstDay(t, flagged, func(d calendar.DayViewModel) bool { return d.IsSelected })
	assert.Equal(t, day, sel.Date)
}

func TestSetValue_OutOfViewMovesCalendar(t *testing.T) {
	c, rec := newTestContainer(t, Options{})
	rec.reset()

	c.SetValue(calendar.NewDate(2024, time.June, 15))

	assert.Equal(t, 1, rec.count(KindCalculate))
	assert.Equal(t, 1, rec.count(KindFormat))
	st := c.Store().State()
	assert.Equal(t, time.June, st.FlaggedMonths[0].Month.Month)
	sel := firstDay(t, st.FlaggedMonths, func(d calendar.DayViewModel) bool { return d.IsSelected })
	assert.Equal(t, 15, sel.Date.Day)
}

func TestOnValueChange_EmitsInitialAndChanges(t *testing.T) {
	var values []calendar.Date
	c, _ := newTestContainer(t, Options{OnValueChange: func(d calendar.Date) { values = append(values, d) }})

	day := calendar.NewDate(2024, time.January, 20)
	c.SetValue(day)
	c.SetValue(day)

	assert.Equal(t, []calendar.Date{{}, day}, values)
}

func TestDayHover_OtherMonthIsIgnored(t *testing.T) {
	c, rec := newTestContainer(t, Options{Builder: calendar.Builder{FirstDayOfWeek: time.Sunday}})
	var days []calendar.DaysCalendarViewModel
	c.DaysCalendar(func(v []calendar.DaysCalendarViewModel) { days = v })
	rec.reset()

	cell := firstDay(t, days, func(d calendar.DayViewModel) bool { return d.IsOtherMonth })
	c.DayHover(DayHoverEvent{Day: cell, IsHovered: true})

	assert.Empty(t, rec.kinds)
	assert.False(t, cell.IsHovered)
	assert.True(t, c.Store().State().HoveredDate.IsZero())
}

func TestDayHover_DispatchesAndMarksCell(t *testing.T) {
	c, rec := newTestContainer(t, Options{})
	var days []calendar.DaysCalendarViewModel
	c.DaysCalendar(func(v []calendar.DaysCalendarViewModel) { days = v })
	held := days
	rec.reset()

	cell := firstDay(t, held, func(d calendar.DayViewModel) bool { return d.Date.Day == 12 && !d.IsOtherMonth })
	c.DayHover(DayHoverEvent{Day: cell, IsHovered: true})

	assert.Equal(t, []Kind{KindHoverDay, KindFlag}, rec.kinds)
	assert.True(t, cell.IsHovered, "the held cell is marked without waiting for a new grid")
	hovered := firstDay(t, days, func(d calendar.DayViewModel) bool { return d.IsHovered })
	assert.Equal(t, cell.Date, hovered.Date, "the flag pass delivers a new grid with the hover")

	rec.reset()
	c.DayHover(DayHoverEvent{Day: cell, IsHovered: false})
	assert.Equal(t, []Kind{KindHoverDay}, rec.kinds, "a cleared hover is not ready, so no flag pass runs")
	assert.False(t, cell.IsHovered)
}

func TestDaySelect_OtherMonthIsIgnored(t *testing.T) {
	c, rec := newTestContainer(t, Options{Builder: calendar.Builder{FirstDayOfWeek: time.Sunday}})
	var days []calendar.DaysCalendarViewModel
	c.DaysCalendar(func(v []calendar.DaysCalendarViewModel) { days = v })
	rec.reset()

	c.DaySelect(firstDay(t, days, func(d calendar.DayViewModel) bool { return d.IsOtherMonth }))
	c.DaySelect(nil)

	assert.Empty(t, rec.kinds)
	assert.True(t, c.Store().State().SelectedDate.IsZero())
}

func TestMonthAndYearHover_OnlyTouchCells(t *testing.T) {
	c, rec := newTestContainer(t, Options{})
	var months []calendar.MonthsCalendarViewModel
	var years []calendar.YearsCalendarViewModel
	c.MonthsCalendar(func(v []calendar.MonthsCalendarViewModel) { months = v })
	c.YearsCalendar(func(v []calendar.YearsCalendarViewModel) { years = v })
	rec.reset()

	month := &months[0].Months[0][1]
	year := &years[0].Years[2][0]
	c.MonthHover(MonthHoverEvent{Month: month, IsHovered: true})
	c.YearHover(YearHoverEvent{Year: year, IsHovered: true})

	assert.Empty(t, rec.kinds)
	assert.True(t, month.IsHovered)
	assert.True(t, year.IsHovered)
	assert.False(t, c.Store().State().FlaggedMonthsCalendar[0].Months[0][1].IsHovered, "store copy is untouched")
}

func TestMonthSelect_DescendsToDayView(t *testing.T) {
	c, _ := newTestContainer(t, Options{ViewDate: calendar.NewDate(2024, time.March, 31)})
	c.ChangeViewMode(ViewMonth)
	require.Equal(t, ViewMonth, c.ViewMode())

	var months []calendar.MonthsCalendarViewModel
	c.MonthsCalendar(func(v []calendar.MonthsCalendarViewModel) { months = v })
	c.MonthSelect(&months[0].Months[1][1]) // May

	st := c.Store().State()
	assert.Equal(t, ViewDay, st.ViewMode)
	assert.Equal(t, ViewDay, c.ViewMode())
	assert.Equal(t, time.May, st.ViewDate.Month)
	assert.Equal(t, 2024, st.ViewDate.Year, "year is unchanged")
	assert.Equal(t, time.May, st.FlaggedMonths[0].Month.Month)
}

func TestYearSelect_DescendsToMonthView(t *testing.T) {
	c, _ := newTestContainer(t, Options{ViewDate: calendar.NewDate(2024, time.February, 29), ViewMode: ViewYear})
	require.Equal(t, ViewYear, c.ViewMode())

	var years []calendar.YearsCalendarViewModel
	c.YearsCalendar(func(v []calendar.YearsCalendarViewModel) { years = v })
	cell := &years[0].Years[0][3] // 2020
	require.Equal(t, 2020, cell.Date.Year)
	c.YearSelect(cell)

	st := c.Store().State()
	assert.Equal(t, ViewMonth, st.ViewMode)
	assert.Equal(t, ViewMonth, c.ViewMode())
	assert.Equal(t, 2020, st.ViewDate.Year)
	assert.Equal(t, time.February, st.ViewDate.Month)
	assert.Equal(t, "2020", st.FlaggedMonthsCalendar[0].Title)
}

func TestRenderOptions_Delivered(t *testing.T) {
	c, _ := newTestContainer(t, Options{RenderOptions: calendar.RenderOptions{DisplayMonths: 2}})

	var got calendar.RenderOptions
	c.RenderOptions(func(o calendar.RenderOptions) { got = o })
	assert.Equal(t, 2, got.DisplayMonths)
	assert.Len(t, c.Store().State().FlaggedMonths, 2)
}

func TestClose_StopsPipeline(t *testing.T) {
	c, rec := newTestContainer(t, Options{})
	c.Close()
	rec.reset()

	c.NavigateTo(NavigationEvent{Step: Step{Months: 1}})
	assert.Equal(t, []Kind{KindNavigateStep}, rec.kinds)
}
