package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name    string
	R, G, B uint8
}

func (t Theme) Color() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", t.R, t.G, t.B))
}

var Themes = []Theme{
	{"green", 0, 255, 0},
	{"red", 255, 0, 0},
	{"blue", 0, 0, 255},
	{"skyblue", 135, 206, 235},
	{"magenta", 255, 0, 255},
	{"yellow", 255, 255, 0},
	{"gold", 255, 215, 0},
	{"silver", 192, 192, 192},
	{"white", 255, 255, 255},
	{"lime", 191, 255, 0},
	{"orange", 255, 165, 0},
	{"violet", 148, 0, 211},
	{"pink", 255, 105, 180},
}

const DefaultName = "orange"

// Index finds a theme by name, ignoring case. Unknown names select the
// default theme.
func Index(name string) int {
	name = strings.TrimSpace(name)
	for i, t := range Themes {
		if strings.EqualFold(t.Name, name) {
			return i
		}
	}
	for i, t := range Themes {
		if t.Name == DefaultName {
			return i
		}
	}
	return 0
}

// Cycle moves delta themes from index, wrapping in both directions.
func Cycle(index, delta int) int {
	n := len(Themes)
	return ((index+delta)%n + n) % n
}

var (
	SelectedText      = lipgloss.Color("#141414")
	SelectedSecondary = lipgloss.Color("#5a5a5a")
	ErrorColor        = lipgloss.Color("#ff0000")
)

// Styles are the accent-derived styles used to draw one frame.
type Styles struct {
	Accent    lipgloss.Color
	Normal    lipgloss.Style
	Dim       lipgloss.Style
	Bold      lipgloss.Style
	Selected  lipgloss.Style
	SelectDim lipgloss.Style
	Error     lipgloss.Style
	ErrorDim  lipgloss.Style
	Border    lipgloss.Style
	Prompt    lipgloss.Style
}

func New(t Theme) Styles {
	accent := t.Color()
	normal := lipgloss.NewStyle().Foreground(accent)
	return Styles{
		Accent:    accent,
		Normal:    normal,
		Dim:       normal.Faint(true),
		Bold:      normal.Bold(true),
		Selected:  lipgloss.NewStyle().Background(accent).Foreground(SelectedText),
		SelectDim: lipgloss.NewStyle().Background(accent).Foreground(SelectedSecondary),
		Error:     lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
		ErrorDim:  lipgloss.NewStyle().Foreground(ErrorColor),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Prompt: lipgloss.NewStyle().Background(accent).Foreground(SelectedText),
	}
}
