package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/tui/theme"
)

type Focus int

const (
	FocusList Focus = iota
	FocusInput
)

// InputKind is one step of a prompt flow. Each worktree wizard step carries
// only what the earlier steps collected.
type InputKind interface {
	Label() string
	Placeholder() string
}

type cloneInput struct{}

type worktreeNameInput struct {
	repo git.Repo
}

type worktreeSourceInput struct {
	repo git.Repo
	name string
}

type worktreeBranchInput struct {
	repo   git.Repo
	name   string
	source string
}

type deleteRepoInput struct {
	name string
}

type deleteWorktreeInput struct {
	repo git.Repo
	name string
}

type discardWorktreeInput struct {
	repo git.Repo
	name string
}

func (cloneInput) Label() string          { return "clone from > " }
func (worktreeNameInput) Label() string   { return "worktree name > " }
func (worktreeSourceInput) Label() string { return "source branch > " }
func (worktreeBranchInput) Label() string { return "new branch > " }
func (k deleteRepoInput) Label() string   { return fmt.Sprintf("delete %s repo? > ", k.name) }
func (k deleteWorktreeInput) Label() string {
	return fmt.Sprintf("delete %s worktree? > ", k.name)
}
func (k discardWorktreeInput) Label() string {
	return fmt.Sprintf("delete %s worktree and discard changes? > ", k.name)
}

func (cloneInput) Placeholder() string           { return "git url or github user/repo" }
func (worktreeNameInput) Placeholder() string    { return "worktree name" }
func (worktreeSourceInput) Placeholder() string  { return "source branch" }
func (worktreeBranchInput) Placeholder() string  { return "branch name" }
func (deleteRepoInput) Placeholder() string      { return "type 'yes' to confirm" }
func (deleteWorktreeInput) Placeholder() string  { return "type 'yes' to confirm" }
func (discardWorktreeInput) Placeholder() string { return "type 'discard' to confirm" }

// InputState is an open prompt. Escape returns focus to Origin.
type InputState struct {
	Kind   InputKind
	Origin Focus
	field  textinput.Model
}

func newInput(kind InputKind, buffer string, origin Focus, styles theme.Styles) *InputState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = kind.Placeholder()
	ti.TextStyle = styles.Prompt
	ti.PlaceholderStyle = styles.Prompt.Faint(true)
	ti.Cursor.Style = styles.Prompt.Reverse(true)
	ti.SetValue(buffer)
	ti.CursorEnd()
	ti.Focus()
	return &InputState{Kind: kind, Origin: origin, field: ti}
}

func (in *InputState) Value() string { return in.field.Value() }

func (in *InputState) View() string { return in.field.View() }

// edit applies an editing key to the buffer. Control keys other than the
// cursor and delete keys are ignored.
func (in *InputState) edit(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
	case tea.KeySpace, tea.KeyBackspace, tea.KeyDelete,
		tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
	default:
		return
	}
	in.field, _ = in.field.Update(msg)
}

// confirmed reports whether input is a non-empty, case-insensitive prefix
// of word, ignoring surrounding space.
func confirmed(input, word string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	return input != "" && strings.HasPrefix(word, input)
}
