package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/datepicker/internal/calendar"
	"github.com/five82/datepicker/internal/datepicker"
)

const (
	dayCellWidth   = 3
	monthCellWidth = 5
	yearCellWidth  = 6
	calendarGap    = "  "
)

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()

	var body string
	switch m.container.ViewMode() {
	case datepicker.ViewMonth:
		body = m.renderMonths(styles)
	case datepicker.ViewYear:
		body = m.renderYears(styles)
	default:
		body = m.renderDays(styles)
	}

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText

	footer := m.help.View(m.keys)
	if m.prompting {
		footer = m.renderPrompt(styles)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderStatus(styles),
		footer,
	)
}

func (m Model) renderDays(styles Styles) string {
	blocks := make([]string, 0, len(m.grids.days)*2)
	for ci, cal := range m.grids.days {
		if ci > 0 {
			blocks = append(blocks, calendarGap)
		}
		blocks = append(blocks, m.renderDaysCalendar(styles, ci, cal))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model) renderDaysCalendar(styles Styles, ci int, cal calendar.DaysCalendarViewModel) string {
	weekNumbers := m.grids.options.ShowWeekNumbers

	var b strings.Builder
	if weekNumbers {
		b.WriteString(styles.WeekNumber.Render(pad("Wk", dayCellWidth)))
	}
	for _, name := range cal.WeekdayNames {
		b.WriteString(styles.Weekday.Render(pad(name, dayCellWidth)))
	}
	header := b.String()

	lines := []string{header}
	for r, week := range cal.Weeks {
		b.Reset()
		if weekNumbers {
			b.WriteString(styles.WeekNumber.Render(pad(week.Number, dayCellWidth)))
		}
		for col, day := range week.Days {
			style := styles.Cell
			switch {
			case day.IsSelected:
				style = styles.Selected
			case day.IsHovered:
				style = styles.Hovered
			case day.IsOtherMonth:
				style = styles.OtherMonth
			}
			if m.cursor == (cursor{ci, r, col}) {
				style = style.Inherit(styles.Cursor)
			}
			b.WriteString(style.Render(pad(day.Label, dayCellWidth)))
		}
		lines = append(lines, b.String())
	}

	title := styles.Title.Render(cal.MonthTitle + " " + cal.YearTitle)
	return m.frame(styles, title, lines)
}

func (m Model) renderMonths(styles Styles) string {
	blocks := make([]string, 0, len(m.grids.months)*2)
	for ci, cal := range m.grids.months {
		if ci > 0 {
			blocks = append(blocks, calendarGap)
		}
		lines := make([]string, 0, len(cal.Months))
		for r, row := range cal.Months {
			var b strings.Builder
			for col, cell := range row {
				style := cellStyle(styles, cell.IsSelected, cell.IsHovered)
				if m.cursor == (cursor{ci, r, col}) {
					style = style.Inherit(styles.Cursor)
				}
				b.WriteString(style.Render(pad(cell.Label, monthCellWidth)))
			}
			lines = append(lines, b.String())
		}
		blocks = append(blocks, m.frame(styles, styles.Title.Render(cal.Title), lines))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model) renderYears(styles Styles) string {
	blocks := make([]string, 0, len(m.grids.years)*2)
	for ci, cal := range m.grids.years {
		if ci > 0 {
			blocks = append(blocks, calendarGap)
		}
		lines := make([]string, 0, len(cal.Years))
		for r, row := range cal.Years {
			var b strings.Builder
			for col, cell := range row {
				style := cellStyle(styles, cell.IsSelected, cell.IsHovered)
				if m.cursor == (cursor{ci, r, col}) {
					style = style.Inherit(styles.Cursor)
				}
				b.WriteString(style.Render(pad(cell.Label, yearCellWidth)))
			}
			lines = append(lines, b.String())
		}
		blocks = append(blocks, m.frame(styles, styles.Title.Render(cal.Title), lines))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model) frame(styles Styles, title string, lines []string) string {
	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)
	heading := lipgloss.PlaceHorizontal(lipgloss.Width(grid), lipgloss.Center, title)
	return styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, heading, grid))
}

func (m Model) renderStatus(styles Styles) string {
	value := styles.FaintText.Render("none")
	if !m.grids.value.IsZero() {
		value = styles.Value.Render(m.grids.value.String())
	}
	return styles.Status.Render(fmt.Sprintf(" Selected: %s  View: %s  Theme: %s",
		value, m.container.ViewMode(), m.theme.Name))
}

func (m Model) renderPrompt(styles Styles) string {
	line := " " + m.prompt.View()
	if m.promptErr != "" {
		line += "  " + styles.Cursor.Render(m.promptErr)
	}
	return line
}

func cellStyle(styles Styles, selected, hovered bool) lipgloss.Style {
	switch {
	case selected:
		return styles.Selected
	case hovered:
		return styles.Hovered
	default:
		return styles.Cell
	}
}

// pad right-aligns s in a cell of width w.
func pad(s string, w int) string {
	return fmt.Sprintf("%*s", w, s)
}
