package tui

import "github.com/nicobailon/bbq/internal/names"

type SetupStep int

const (
	SetupWorktreeNames SetupStep = iota
	SetupEditor
	SetupTerminal
)

func (s SetupStep) Question() string {
	switch s {
	case SetupWorktreeNames:
		return "Would you like to use default worktree names?"
	case SetupEditor:
		return "Which editor do you want to use?"
	default:
		return "Which terminal do you want to use?"
	}
}

// SetupOption is one answer. A Skip option saves nothing.
type SetupOption struct {
	Label string
	Value string
	Skip  bool
}

type SetupState struct {
	Step     SetupStep
	Options  []SetupOption
	Selected int
}

func newSetupState(step SetupStep, launcher Launcher) *SetupState {
	var options []SetupOption
	switch step {
	case SetupWorktreeNames:
		options = []SetupOption{
			{Label: string(names.ModeCities), Value: string(names.ModeCities)},
			{Label: "no defaults", Value: ""},
		}
	case SetupEditor:
		for _, t := range launcher.Detect() {
			options = append(options, SetupOption{Label: t.Label(), Value: t.Command()})
		}
	case SetupTerminal:
		for _, app := range launcher.DetectTerminals() {
			options = append(options, SetupOption{Label: app.Label, Value: app.Value})
		}
	}
	if len(options) == 0 {
		options = append(options, SetupOption{Label: "Configure later", Skip: true})
	}
	return &SetupState{Step: step, Options: options}
}

func (s *SetupState) move(delta int) {
	s.Selected = wrap(s.Selected, delta, len(s.Options))
}

var updatePromptOptions = []string{
	"run: brew upgrade bbq",
	"not right now",
	"never ask again",
}

const (
	updateOptionUpgrade = iota
	updateOptionLater
	updateOptionNever
)

// UpdatePrompt offers a Homebrew upgrade before the main screen. While the
// upgrade runs keys are ignored; once it completes only Enter (quit) works.
type UpdatePrompt struct {
	Current   string
	Latest    string
	Selected  int
	Running   bool
	Completed bool
}

func (p *UpdatePrompt) Options() []string { return updatePromptOptions }

func (p *UpdatePrompt) move(delta int) {
	p.Selected = wrap(p.Selected, delta, len(updatePromptOptions))
}

func wrap(cur, delta, n int) int {
	if n == 0 {
		return 0
	}
	switch {
	case delta < 0 && cur <= 0:
		return n - 1
	case delta < 0:
		return cur - 1
	case cur >= n-1:
		return 0
	}
	return cur + 1
}
