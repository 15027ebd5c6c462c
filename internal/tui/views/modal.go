package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nicobailon/bbq/internal/tui/theme"
)

const indent = "  "

// Choice is a full-screen single-choice question.
type Choice struct {
	Question string
	Options  []string
	Selected int
	Hints    []string
}

// Note is a status line shown under a modal.
type Note struct {
	Text  string
	Error bool
}

func RenderChoice(s theme.Styles, c Choice, note *Note) string {
	lines := []string{indent + s.Bold.Render(c.Question), ""}
	for i, opt := range c.Options {
		marker, style := "○", s.Normal
		if i == c.Selected {
			marker, style = "◉", s.Bold
		}
		lines = append(lines, indent+style.Render(marker+" "+opt))
	}
	if len(c.Hints) > 0 {
		lines = append(lines, "")
		for _, h := range c.Hints {
			lines = append(lines, indent+s.Dim.Render(h))
		}
	}
	return finish(s, lines, note)
}

// RenderMessage shows plain lines, for steps with nothing to choose.
func RenderMessage(s theme.Styles, title string, body []string, note *Note) string {
	lines := []string{indent + s.Bold.Render(title)}
	if len(body) > 0 {
		lines = append(lines, "")
		for _, b := range body {
			lines = append(lines, indent+s.Normal.Render(b))
		}
	}
	return finish(s, lines, note)
}

func finish(s theme.Styles, lines []string, note *Note) string {
	if note != nil && note.Text != "" {
		style := s.Normal
		if note.Error {
			style = s.Error
		}
		lines = append(lines, "", indent+style.Render(note.Text))
	}
	return lipgloss.NewStyle().PaddingTop(1).Render(strings.Join(lines, "\n"))
}

// SetupHints close every setup question.
var SetupHints = []string{
	"Use ↑/↓ to choose, Enter to confirm.",
	"You can edit ~/.bbq/config.toml later.",
}
