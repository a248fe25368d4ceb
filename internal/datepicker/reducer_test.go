package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/datepicker/internal/calendar"
)

type unknownAction struct{}

func (unknownAction) Kind() Kind { return "unknown" }

func TestReduce_SelectKeepsViewDateInsideDisplayedMonths(t *testing.T) {
	r := Reducer{}
	s := InitialState(calendar.NewDate(2024, time.January, 1))
	opts := calendar.RenderOptions{DisplayMonths: 2}
	s.RenderOptions = &opts

	inView := r.Reduce(s, Select{Date: calendar.NewDate(2024, time.February, 14)})
	assert.Equal(t, calendar.NewDate(2024, time.February, 14), inView.SelectedDate)
	assert.Equal(t, s.ViewDate, inView.ViewDate)

	outOfView := r.Reduce(s, Select{Date: calendar.NewDate(2024, time.March, 3)})
	assert.Equal(t, calendar.NewDate(2024, time.March, 3), outOfView.ViewDate)

	cleared := r.Reduce(inView, Select{})
	assert.True(t, cleared.SelectedDate.IsZero())
	assert.Equal(t, s.ViewDate, cleared.ViewDate)
}

func TestReduce_Navigation(t *testing.T) {
	r := Reducer{}
	s := InitialState(calendar.NewDate(2024, time.January, 31))

	cases := []struct {
		name     string
		action   Action
		wantDate calendar.Date
		wantMode ViewMode
	}{
		{"step month clamps", NavigateStep{Step: Step{Months: 1}}, calendar.NewDate(2024, time.February, 29), ViewDay},
		{"step back a year", NavigateStep{Step: Step{Years: -1}}, calendar.NewDate(2023, time.January, 31), ViewDay},
		{"step years window", NavigateStep{Step: Step{Years: calendar.YearsPerCalendar}}, calendar.NewDate(2040, time.January, 31), ViewDay},
		{"to month", NavigateTo{Target: NavigationTarget{Unit: Unit{Month: time.April}, ViewMode: ViewDay}}, calendar.NewDate(2024, time.April, 30), ViewDay},
		{"to year", NavigateTo{Target: NavigationTarget{Unit: Unit{Year: 2020}, ViewMode: ViewMonth}}, calendar.NewDate(2020, time.January, 31), ViewMonth},
		{"change mode", ChangeViewMode{Mode: ViewYear}, calendar.NewDate(2024, time.January, 31), ViewYear},
		{"unknown action", unknownAction{}, calendar.NewDate(2024, time.January, 31), ViewDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Reduce(s, tc.action)
			assert.Equal(t, tc.wantDate, got.ViewDate)
			assert.Equal(t, tc.wantMode, got.ViewMode)
		})
	}
}

func TestReduce_HoverDay(t *testing.T) {
	r := Reducer{}
	day := calendar.NewDate(2024, time.January, 9)

	s := r.Reduce(InitialState(day), HoverDay{Date: day, IsHovered: true})
	assert.Equal(t, day, s.HoveredDate)

	s = r.Reduce(s, HoverDay{Date: day, IsHovered: false})
	assert.True(t, s.HoveredDate.IsZero())
}

func TestReduce_StagesOnlyRunWhenUpstreamIsReady(t *testing.T) {
	r := Reducer{}
	s := InitialState(calendar.NewDate(2024, time.January, 1))

	s = r.Reduce(s, Format{})
	assert.Nil(t, s.FormattedMonths)
	s = r.Reduce(s, Flag{})
	assert.Nil(t, s.FlaggedMonths)
	assert.Nil(t, s.FlaggedMonthsCalendar)
	assert.Nil(t, s.YearsCalendarFlagged)

	s = r.Reduce(s, Calculate{})
	require.NotNil(t, s.MonthsModel)
	require.NotNil(t, s.MonthsCalendar)
	require.NotNil(t, s.YearsCalendarModel)
	s = r.Reduce(s, Format{})
	s = r.Reduce(s, Flag{})
	assert.NotNil(t, s.FlaggedMonths)
	assert.NotNil(t, s.FlaggedMonthsCalendar)
	assert.NotNil(t, s.YearsCalendarFlagged)
}

func TestReduce_RenderOptionsNormalized(t *testing.T) {
	s := Reducer{}.Reduce(State{}, SetRenderOptions{Options: calendar.RenderOptions{DisplayMonths: 0}})
	require.NotNil(t, s.RenderOptions)
	assert.Equal(t, 1, s.RenderOptions.DisplayMonths)
}

func TestParseViewMode(t *testing.T) {
	m, err := ParseViewMode(" Month ")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, m)

	_, err = ParseViewMode("week")
	assert.Error(t, err)
}
