package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/datepicker/internal/calendar"
	"github.com/five82/datepicker/internal/datepicker"
	"github.com/five82/datepicker/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Container *datepicker.Container
	ThemeName string
	PrefsPath string
	Logger    *slog.Logger
}

// cursor addresses one cell: calendar index, row and column.
type cursor struct {
	cal, row, col int
}

// grids holds the latest copies delivered by the container. Deliveries
// happen synchronously inside Dispatch, so Model copies share one grids.
type grids struct {
	days    []calendar.DaysCalendarViewModel
	months  []calendar.MonthsCalendarViewModel
	years   []calendar.YearsCalendarViewModel
	options calendar.RenderOptions
	value   calendar.Date
}

// Model is the root application state for Bubble Tea.
type Model struct {
	container *datepicker.Container
	grids     *grids
	prefsPath string
	logger    *slog.Logger

	keys   keyMap
	help   help.Model
	theme  Theme
	cursor cursor
	width  int
	height int

	// Go-to-date prompt
	prompt    textinput.Model
	prompting bool
	promptErr string
}

// New subscribes to the container's grids and places the cursor on the
// view date.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &grids{}
	c := opts.Container
	c.DaysCalendar(func(v []calendar.DaysCalendarViewModel) { g.days = v })
	c.MonthsCalendar(func(v []calendar.MonthsCalendarViewModel) { g.months = v })
	c.YearsCalendar(func(v []calendar.YearsCalendarViewModel) { g.years = v })
	c.RenderOptions(func(o calendar.RenderOptions) { g.options = o })
	c.Value(func(d calendar.Date) { g.value = d })

	m := Model{
		container: c,
		grids:     g,
		prefsPath: prefsPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		prompt:    newPrompt(),
	}
	m.refocus(m.viewDate())
	m.hoverCursor(true)
	return m
}

// Value is the currently selected date; zero when nothing is selected.
func (m Model) Value() calendar.Date {
	return m.grids.value
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.ViewDays):
		m.changeViewMode(datepicker.ViewDay)
	case key.Matches(msg, m.keys.ViewMonths):
		m.changeViewMode(datepicker.ViewMonth)
	case key.Matches(msg, m.keys.ViewYears):
		m.changeViewMode(datepicker.ViewYear)

	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)

	case key.Matches(msg, m.keys.Prev):
		m.page(-1)
	case key.Matches(msg, m.keys.Next):
		m.page(1)

	case key.Matches(msg, m.keys.Select):
		m.selectCursor()

	case key.Matches(msg, m.keys.Today):
		m.jumpTo(calendar.Today())

	case key.Matches(msg, m.keys.Goto):
		m.prompting = true
		m.promptErr = ""
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	}
	return m, nil
}

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Go to: "
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	return ti
}

// handlePromptKey feeds the go-to-date prompt until enter or esc.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil

	case tea.KeyEnter:
		d, err := calendar.ParseDate(m.prompt.Value())
		if err != nil {
			m.promptErr = "expected YYYY-MM-DD"
			return m, nil
		}
		m.closePrompt()
		m.jumpTo(d)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.promptErr = ""
	m.prompt.Blur()
}

// jumpTo selects d and moves the cursor onto it.
func (m *Model) jumpTo(d calendar.Date) {
	m.hoverCursor(false)
	m.container.SetValue(d)
	m.refocus(d)
	m.hoverCursor(true)
}

func (m *Model) changeViewMode(mode datepicker.ViewMode) {
	if mode == m.container.ViewMode() {
		return
	}
	m.hoverCursor(false)
	m.container.ChangeViewMode(mode)
	m.refocus(m.viewDate())
	m.hoverCursor(true)
}

// page moves one grid backwards or forwards: a month in day view, a year in
// month view and a whole years window in year view.
func (m *Model) page(dir int) {
	var step datepicker.Step
	switch m.container.ViewMode() {
	case datepicker.ViewMonth:
		step.Years = dir
	case datepicker.ViewYear:
		step.Years = dir * calendar.YearsPerCalendar
	default:
		step.Months = dir
	}
	m.hoverCursor(false)
	m.container.NavigateTo(datepicker.NavigationEvent{Step: step})
	m.refocus(m.viewDate())
	m.hoverCursor(true)
}

func (m *Model) selectCursor() {
	switch m.container.ViewMode() {
	case datepicker.ViewDay:
		m.container.DaySelect(m.dayAt(m.cursor))
		return
	case datepicker.ViewMonth:
		m.container.MonthSelect(m.monthAt(m.cursor))
	case datepicker.ViewYear:
		m.container.YearSelect(m.yearAt(m.cursor))
	}
	m.refocus(m.viewDate())
	m.hoverCursor(true)
}

// move shifts the cursor within the grid, crossing into the neighbouring
// calendar at the left and right edges.
func (m *Model) move(dr, dc int) {
	cals, rows, cols := m.dims()
	if cals == 0 {
		return
	}
	next := m.cursor
	next.row = min(max(next.row+dr, 0), rows-1)
	next.col += dc
	switch {
	case next.col < 0 && next.cal > 0:
		next.cal--
		next.col = cols - 1
	case next.col >= cols && next.cal < cals-1:
		next.cal++
		next.col = 0
	}
	next.col = min(max(next.col, 0), cols-1)
	if next == m.cursor {
		return
	}
	m.hoverCursor(false)
	m.cursor = next
	m.hoverCursor(true)
}

func (m Model) dims() (cals, rows, cols int) {
	switch m.container.ViewMode() {
	case datepicker.ViewMonth:
		if len(m.grids.months) > 0 && len(m.grids.months[0].Months) > 0 {
			return len(m.grids.months), len(m.grids.months[0].Months), len(m.grids.months[0].Months[0])
		}
	case datepicker.ViewYear:
		if len(m.grids.years) > 0 && len(m.grids.years[0].Years) > 0 {
			return len(m.grids.years), len(m.grids.years[0].Years), len(m.grids.years[0].Years[0])
		}
	default:
		if len(m.grids.days) > 0 && len(m.grids.days[0].Weeks) > 0 {
			return len(m.grids.days), len(m.grids.days[0].Weeks), len(m.grids.days[0].Weeks[0].Days)
		}
	}
	return 0, 0, 0
}

// hoverCursor reports the pointer entering or leaving the cell under the
// cursor.
func (m *Model) hoverCursor(on bool) {
	switch m.container.ViewMode() {
	case datepicker.ViewMonth:
		m.container.MonthHover(datepicker.MonthHoverEvent{Month: m.monthAt(m.cursor), IsHovered: on})
	case datepicker.ViewYear:
		m.container.YearHover(datepicker.YearHoverEvent{Year: m.yearAt(m.cursor), IsHovered: on})
	default:
		m.container.DayHover(datepicker.DayHoverEvent{Day: m.dayAt(m.cursor), IsHovered: on})
	}
}

// refocus puts the cursor on the cell holding d, or on the first cell when
// d is not shown.
func (m *Model) refocus(d calendar.Date) {
	m.cursor = cursor{}
	switch m.container.ViewMode() {
	case datepicker.ViewMonth:
		for ci, cal := range m.grids.months {
			for r, row := range cal.Months {
				for col, cell := range row {
					if cell.Date.Year == d.Year && cell.Date.Month == d.Month {
						m.cursor = cursor{ci, r, col}
						return
					}
				}
			}
		}
	case datepicker.ViewYear:
		for ci, cal := range m.grids.years {
			for r, row := range cal.Years {
				for col, cell := range row {
					if cell.Date.Year == d.Year {
						m.cursor = cursor{ci, r, col}
						return
					}
				}
			}
		}
	default:
		for ci, cal := range m.grids.days {
			if !cal.Month.SameMonth(d) {
				continue
			}
			for r, week := range cal.Weeks {
				for col, cell := range week.Days {
					if cell.Date == d && !cell.IsOtherMonth {
						m.cursor = cursor{ci, r, col}
						return
					}
				}
			}
		}
	}
}

func (m Model) dayAt(c cursor) *calendar.DayViewModel {
	if c.cal >= len(m.grids.days) {
		return nil
	}
	weeks := m.grids.days[c.cal].Weeks
	if c.row >= len(weeks) || c.col >= len(weeks[c.row].Days) {
		return nil
	}
	return &weeks[c.row].Days[c.col]
}

func (m Model) monthAt(c cursor) *calendar.MonthViewModel {
	if c.cal >= len(m.grids.months) {
		return nil
	}
	rows := m.grids.months[c.cal].Months
	if c.row >= len(rows) || c.col >= len(rows[c.row]) {
		return nil
	}
	return &rows[c.row][c.col]
}

func (m Model) yearAt(c cursor) *calendar.YearViewModel {
	if c.cal >= len(m.grids.years) {
		return nil
	}
	rows := m.grids.years[c.cal].Years
	if c.row >= len(rows) || c.col >= len(rows[c.row]) {
		return nil
	}
	return &rows[c.row][c.col]
}

func (m Model) viewDate() calendar.Date {
	return m.container.Store().State().ViewDate
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, ViewMode: string(m.container.ViewMode())}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}
