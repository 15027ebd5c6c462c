package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/tui/theme"
	"github.com/nicobailon/bbq/internal/workspace"
)

const (
	labelWidth  = 10
	shortHashes = 7
)

// Panel draws a bordered box of the given outer size with title set into the
// top border.
func Panel(s theme.Styles, title, body string, width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)
	box := s.Border.
		Width(innerW).
		Height(innerH).
		MaxHeight(height).
		Render(clipLines(body, innerH))
	if title == "" || width < 6 {
		return box
	}
	lines := strings.Split(box, "\n")
	top := s.Normal.Render("╭─ ") + s.Normal.Render(Truncate(title, innerW-4)) + " "
	fill := width - lipgloss.Width(top) - 1
	if fill > 0 {
		top += s.Normal.Render(strings.Repeat("─", fill) + "╮")
	}
	lines[0] = top
	return strings.Join(lines, "\n")
}

// clipLines drops rows past height. Callers keep rows within the width.
func clipLines(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Truncate cuts s to width display cells, ending in an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// TruncateLeft keeps the tail of s, which is the informative end of a path.
func TruncateLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	tail := ""
	for i := len(runes) - 1; i >= 0; i-- {
		next := string(runes[i]) + tail
		if runewidth.StringWidth(next) > width-1 {
			break
		}
		tail = next
	}
	return "…" + tail
}

// LeftRight places left and right on one line of width cells, shortening
// left when both do not fit.
func LeftRight(left, right string, width int, ls, rs lipgloss.Style) string {
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return ls.Render(Truncate(left, width))
	}
	room := width - rw - 1
	left = Truncate(left, room)
	gap := width - runewidth.StringWidth(left) - rw
	return ls.Render(left) + ls.Render(strings.Repeat(" ", max(gap, 1))) + rs.Render(right)
}

func kvLine(s theme.Styles, key, value string, width int) string {
	return s.Dim.Render(fmt.Sprintf("%-*s", labelWidth, key)) + s.Normal.Render(Truncate(value, width-labelWidth))
}

// Worktree renders the details of one worktree entry for the right column.
func Worktree(s theme.Styles, entry workspace.WorktreeEntry, repo string, width, height int) string {
	wt := entry.Worktree
	branch := wt.Branch
	if branch == "" {
		branch = "detached"
	}
	head := "none"
	if wt.Head != "" {
		head = wt.Head
		if len(head) > shortHashes {
			head = head[:shortHashes]
		}
		if author := strings.TrimSpace(entry.HeadAuthor); author != "" {
			head += " - " + author
		}
	}
	upstream := entry.Upstream
	if upstream == "" {
		upstream = "none"
	}
	if repo == "" {
		repo = "none"
	}

	lines := []string{
		kvLine(s, "Worktree:", wt.DisplayName(), width),
		s.Dim.Render(fmt.Sprintf("%-*s", labelWidth, "Dir:")) + s.Normal.Render(TruncateLeft(entry.DisplayPath, width-labelWidth)),
		kvLine(s, "Repo:", repo, width),
		kvLine(s, "Branch:", branch, width),
		kvLine(s, "Upstream:", upstream, width),
		kvLine(s, "Head:", head, width),
	}
	if msg := strings.TrimSpace(entry.HeadMessage); msg != "" {
		lines = append(lines, strings.Repeat(" ", labelWidth)+s.Dim.Render(Truncate(msg, width-labelWidth)))
	}
	lines = append(lines, kvLine(s, "Sync:", entry.SyncStatus, width))

	remaining := height - len(lines)
	if remaining <= 1 {
		return strings.Join(lines, "\n")
	}
	lines = append(lines, s.Dim.Render(strings.Repeat("─", max(width, 1))))
	remaining--

	return strings.Join(append(lines, changes(s, entry.ChangedFiles, width, remaining)...), "\n")
}

func changes(s theme.Styles, files []git.ChangedFile, width, rows int) []string {
	label := s.Dim.Render(fmt.Sprintf("%-*s", labelWidth, "Changes:"))
	pad := strings.Repeat(" ", labelWidth)
	content := max(width-labelWidth, 1)
	if len(files) == 0 {
		return []string{label + s.Dim.Render("none")}
	}

	visible := files
	more := 0
	if len(files) > rows {
		visible = files[:max(rows-1, 0)]
		more = len(files) - len(visible)
	}
	var out []string
	for i, f := range visible {
		prefix := pad
		if i == 0 {
			prefix = label
		}
		stat := fmt.Sprintf("+%d/-%d", f.Added, f.Removed)
		out = append(out, prefix+LeftRight(f.Path, stat, content, s.Normal, s.Dim))
	}
	if more > 0 {
		prefix := pad
		if len(out) == 0 {
			prefix = label
		}
		out = append(out, prefix+s.Dim.Render(fmt.Sprintf("(+%d more)", more)))
	}
	return out
}

// Env renders the environment box.
func Env(s theme.Styles, root, gitVersion, ghVersion string, width int) string {
	if root == "" {
		root = "unknown"
	}
	lines := []string{
		kvLine(s, "Root:", root, width),
		kvLine(s, "Git:", component("git", gitVersion), width),
	}
	if ghVersion != "" {
		lines = append(lines, kvLine(s, "GitHub:", component("gh", ghVersion), width))
	}
	return strings.Join(lines, "\n")
}

func component(name, version string) string {
	if version == "" {
		return name + " (unknown)"
	}
	return name + " v" + strings.TrimPrefix(version, "v")
}
