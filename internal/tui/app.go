package tui

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicobailon/bbq/internal/config"
	"github.com/nicobailon/bbq/internal/open"
	"github.com/nicobailon/bbq/internal/restore"
	"github.com/nicobailon/bbq/internal/tui/theme"
	"github.com/nicobailon/bbq/internal/update"
	"github.com/nicobailon/bbq/internal/workspace"
)

const tickInterval = 200 * time.Millisecond

type Deps struct {
	Svc      *workspace.Service
	Cfg      *config.Config
	Prefs    *config.Store
	Launcher *open.Launcher
	Restore  *restore.Store
	Version  string
}

type App struct {
	deps Deps
}

func New(deps Deps) *App {
	return &App{deps: deps}
}

// Run starts the worker and the watcher and blocks until the user quits.
// Logging goes to debug.log in the config dir when BBQ_DEBUG is set.
func (a *App) Run() error {
	if os.Getenv("BBQ_DEBUG") != "" {
		f, err := tea.LogToFile(filepath.Join(a.deps.Svc.Layout.ConfigDir, "debug.log"), "bbq")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan Event, eventBuffer)
	worker := NewWorker(a.deps.Svc, events)
	go worker.Run(ctx)
	watcher := NewWatcher(a.deps.Svc.Layout, events)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			log.Printf("watcher: %v", err)
		}
	}()

	var namer BranchNamer = plainNames{}
	if a.deps.Svc.GitHub != nil {
		namer = a.deps.Svc.GitHub
	}
	state := NewState(Options{
		Config:   a.deps.Cfg,
		Version:  a.deps.Version,
		Homebrew: update.IsHomebrewInstall(),
		Worker:   worker,
		Prefs:    a.deps.Prefs,
		Launcher: a.deps.Launcher,
		Branches: a.deps.Svc,
		Names:    namer,
		Restore:  a.deps.Restore,
	})

	p := tea.NewProgram(newModel(state, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type plainNames struct{}

func (plainNames) BranchName(name string, _ bool) string { return name }

type tickMsg struct{}

type model struct {
	state   *State
	events  <-chan Event
	spinner spinner.Model
	width   int
	height  int
}

func newModel(state *State, events <-chan Event) model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return model{state: state, events: events, spinner: sp}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.spinner.Style = lipgloss.NewStyle().Foreground(theme.New(m.state.Theme()).Accent).Faint(true)
		return m, cmd

	case tickMsg:
		m.state.Drain(m.events)
		m.state.Tick()
		return m, tick()

	case tea.KeyMsg:
		// Keys act on the newest data the worker has already delivered.
		m.state.Drain(m.events)
		if m.state.HandleKey(msg) {
			m.state.PersistRestore()
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}
