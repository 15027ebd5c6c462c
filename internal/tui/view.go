package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nicobailon/bbq/internal/tui/components"
	"github.com/nicobailon/bbq/internal/tui/theme"
	"github.com/nicobailon/bbq/internal/tui/views"
)

const envBoxHeight = 5

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := m.state
	styles := theme.New(s.Theme())

	if s.update != nil {
		return m.updateView(styles)
	}
	if s.setup != nil {
		return m.setupView(styles)
	}

	footer := m.footer(styles)
	bodyH := max(m.height-lipgloss.Height(footer), 3)
	leftW := m.width / 2
	rightW := m.width - leftW

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.treeColumn(styles, leftW, bodyH),
		m.detailsColumn(styles, rightW, bodyH),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m model) treeColumn(styles theme.Styles, width, height int) string {
	s := m.state
	const title = "Repos & Worktrees"
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	if len(s.repos) == 0 {
		var lines []string
		if _, ok := s.loading.get(LoadingRepos); ok {
			lines = []string{m.spinner.View() + " " + styles.Normal.Render("Loading…")}
		} else {
			lines = []string{
				styles.Dim.Render("No repos"),
				styles.Dim.Render("Press ") + styles.Normal.Render("c") + styles.Dim.Render(" to clone"),
			}
		}
		centered := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
		return components.Panel(styles, title, centered, width, height)
	}

	highlight := s.EffectiveFocus() == FocusList
	items := s.tree.items
	offset := 0
	if s.tree.selected >= innerH {
		offset = s.tree.selected - innerH + 1
	}
	var rows []string
	for i := offset; i < len(items) && len(rows) < innerH; i++ {
		rows = append(rows, treeRow(styles, items[i], innerW, highlight && i == s.tree.selected))
	}
	return components.Panel(styles, title, strings.Join(rows, "\n"), width, height)
}

func treeRow(styles theme.Styles, item TreeItem, width int, selected bool) string {
	primary, secondary := styles.Normal, styles.Dim
	if selected {
		primary, secondary = styles.Selected, styles.SelectDim
	}
	switch it := item.(type) {
	case *RepoItem:
		right := "↓"
		arrow := primary
		if !it.Expanded {
			right = fmt.Sprintf("%d →", it.Count)
			arrow = secondary
		}
		return components.LeftRight(it.Display, right, width, primary, arrow)
	case *WorktreeItem:
		return components.LeftRight("  "+it.Branch(), it.Entry.Worktree.DisplayName(), width, primary, secondary)
	}
	return ""
}

func (m model) detailsColumn(styles theme.Styles, width, height int) string {
	s := m.state
	envH := 0
	if height >= envBoxHeight+2 {
		envH = envBoxHeight
	}
	topH := height - envH
	innerW := max(width-2, 1)

	var top string
	if entry := s.selectedEntry(); entry != nil {
		body := components.Worktree(styles, entry.Entry, s.displayRepo(entry.Repo), innerW, max(topH-2, 1))
		top = components.Panel(styles, "Worktree", body, width, topH)
	} else {
		empty := lipgloss.Place(innerW, max(topH-2, 1), lipgloss.Center, lipgloss.Center, styles.Dim.Render("No worktree selected"))
		top = components.Panel(styles, "Worktree", empty, width, topH)
	}
	if envH == 0 {
		return top
	}
	env := components.Env(styles, s.env.Root, s.env.GitVersion, s.env.GhVersion, innerW)
	return lipgloss.JoinVertical(lipgloss.Left, top, components.Panel(styles, "Environment", env, width, envH))
}

func (m model) footer(styles theme.Styles) string {
	s := m.state
	width := max(m.width-2, 1)
	pad := lipgloss.NewStyle().Padding(0, 1)

	if s.input != nil {
		line := styles.Prompt.Render(" "+s.input.Kind.Label()) + s.input.View()
		return styles.Prompt.Width(m.width).MaxWidth(m.width).Render(line)
	}

	if st := s.status; st != nil {
		prefix, text := styles.Dim, styles.Normal
		if st.Tone == StatusError {
			prefix, text = styles.ErrorDim, styles.Error
		}
		hide := styles.Normal.Render("esc") + styles.Dim.Render(" hide")
		msgW := max(width-lipgloss.Width(hide)-1, 1)
		msg := lipgloss.NewStyle().Width(msgW).Render(prefix.Render("→ ") + text.Render(st.Text))
		return pad.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, msg, " ", hide))
	}

	if l, ok := s.Loading(); ok {
		line := m.spinner.View() + " " + styles.Normal.Render(l.Text)
		return pad.Render(lipgloss.NewStyle().Width(width).Render(line))
	}

	right := styles.Normal.Render("h") + styles.Dim.Render(" theme: "+s.Theme().Name+" | ") +
		styles.Normal.Render(fmt.Sprintf("bbq v%s - get cookin'", s.version))
	left := styles.Dim.Render(components.Truncate(m.helpText(), max(width-lipgloss.Width(right)-1, 0)))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return pad.Render(left + strings.Repeat(" ", gap) + right)
}

// helpText lists the keys that do something for the current selection.
func (m model) helpText() string {
	s := m.state
	focus := s.EffectiveFocus()
	var items []string
	if focus == FocusList || len(s.repos) == 0 {
		items = append(items, "c clone")
	}
	if _, ok := s.selectedRepo(); ok {
		items = append(items, "n new worktree")
	}
	if focus == FocusList && s.tree.current() != nil {
		items = append(items, "d delete")
	}
	if s.selectedEntry() != nil {
		items = append(items, "t terminal", "enter editor")
	}
	return strings.Join(items, " | ")
}

func (m model) statusNote() *views.Note {
	st := m.state.status
	if st == nil {
		return nil
	}
	return &views.Note{Text: st.Text, Error: st.Tone == StatusError}
}

func (m model) setupView(styles theme.Styles) string {
	setup := m.state.setup
	c := views.Choice{
		Question: setup.Step.Question(),
		Selected: setup.Selected,
		Hints:    views.SetupHints,
	}
	for _, opt := range setup.Options {
		c.Options = append(c.Options, opt.Label)
	}
	return views.RenderChoice(styles, c, m.statusNote())
}

func (m model) updateView(styles theme.Styles) string {
	p := m.state.update
	title := fmt.Sprintf("New version of bbq is available (%s → %s)!", p.Current, p.Latest)
	switch {
	case p.Completed:
		return views.RenderMessage(styles, title, []string{"Upgrade complete. Relaunch with bbq.", "", "Press Enter to quit."}, nil)
	case p.Running:
		return views.RenderMessage(styles, title, []string{m.spinner.View() + " Running brew upgrade bbq..."}, nil)
	}
	return views.RenderChoice(styles, views.Choice{
		Question: title,
		Options:  p.Options(),
		Selected: p.Selected,
		Hints:    []string{"Use ↑/↓ to choose, Enter to confirm."},
	}, m.statusNote())
}
