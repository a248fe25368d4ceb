package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the picker.
type Theme struct {
	Name string

	Background string
	Surface    string

	// Cell highlight colors
	SelectionBg   string
	SelectionText string
	HoverBg       string

	Border string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	Weekday    lipgloss.Style
	WeekNumber lipgloss.Style

	Cell       lipgloss.Style
	OtherMonth lipgloss.Style
	Hovered    lipgloss.Style
	Selected   lipgloss.Style
	Cursor     lipgloss.Style

	Status lipgloss.Style
	Value  lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Weekday: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Bold(true),

		WeekNumber: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		OtherMonth: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Hovered: lipgloss.NewStyle().
			Background(lipgloss.Color(t.HoverBg)).
			Foreground(lipgloss.Color(t.Text)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Underline(true),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
	}
}

var themes = map[string]Theme{
	"Dracula":  draculaTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Dracula", "Kanagawa", "Slate"}

func draculaTheme() Theme {
	return Theme{
		Name: "Dracula",

		Background: "#21222C",
		Surface:    "#282A36",

		SelectionBg:   "#BD93F9", // purple
		SelectionText: "#282A36",
		HoverBg:       "#44475A", // current line

		Border: "#6272A4", // comment

		Text:    "#F8F8F2",
		Muted:   "#BFBFBF",
		Faint:   "#6272A4",
		Accent:  "#8BE9FD", // cyan
		Success: "#50FA7B",
		Warning: "#F1FA8C",
	}
}

func kanagawaTheme() Theme {
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite
		HoverBg:       "#2A2A37", // sumiInk4

		Border: "#54546D", // sumiInk6

		Text:    "#DCD7BA",
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50
		HoverBg:       "#1e293b", // slate-800

		Border: "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
	}
}

// GetTheme returns the named theme, or Dracula when the name is unknown.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Dracula"]
}

// NextTheme returns the theme after name in cycling order.
func NextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames lists the available themes in cycling order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}
