package tui

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicobailon/bbq/internal/config"
	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/names"
	"github.com/nicobailon/bbq/internal/open"
	"github.com/nicobailon/bbq/internal/restore"
	"github.com/nicobailon/bbq/internal/tui/theme"
	"github.com/nicobailon/bbq/internal/update"
	"github.com/nicobailon/bbq/internal/validate"
	"github.com/nicobailon/bbq/internal/workspace"
)

type Submitter interface {
	Submit(req Request)
}

// Preferences persists the settings the UI can change.
type Preferences interface {
	SaveTheme(name string) error
	SaveEditor(command string) error
	SaveTerminal(command string) error
	SaveDefaultWorktreeName(mode string) error
	SaveKnownLatestVersion(version string) error
	SaveCheckUpdates(enabled bool) error
}

type Launcher interface {
	Detect() []open.Target
	DetectTerminals() []open.TerminalApp
	OpenTarget(t open.Target, path string) error
	OpenEditor(command, path string) error
	OpenTerminal(path, command string) error
}

// BranchResolver supplies the default source branch for the worktree wizard.
type BranchResolver interface {
	DefaultBranch(repo git.Repo) string
}

// BranchNamer turns a worktree name into the suggested new branch.
type BranchNamer interface {
	BranchName(name string, prefix bool) string
}

type RestoreStore interface {
	Load() restore.State
	Save(state restore.State) error
}

type Options struct {
	Config   *config.Config
	Version  string
	Homebrew bool

	Worker   Submitter
	Prefs    Preferences
	Launcher Launcher
	Branches BranchResolver
	Names    BranchNamer
	Restore  RestoreStore

	// Now defaults to time.Now.
	Now func() time.Time
}

// State is the interactive engine: it turns keys and worker events into
// requests and a renderable model. It is only touched from the UI loop.
type State struct {
	cfg      *config.Config
	version  string
	homebrew bool
	worker   Submitter
	prefs    Preferences
	launcher Launcher
	branches BranchResolver
	namer    BranchNamer
	restore  RestoreStore
	now      func() time.Time

	repos     []git.Repo
	worktrees map[string][]workspace.WorktreeEntry
	display   map[string]string
	expanded  map[string]bool
	tree      treeList

	focus   Focus
	input   *InputState
	status  *StatusMessage
	loading loadingSet

	themeIndex  int
	editor      string
	terminal    string
	nameMode    names.Mode
	knownLatest string
	env         workspace.EnvInfo

	seq         uint64
	pending     uint64
	needsReload bool

	desiredRepo     string
	desiredWorktree *TreeKey

	setup      *SetupState
	setupSteps []SetupStep
	update     *UpdatePrompt
}

// NewState restores the saved layout and queues the startup requests.
func NewState(opts Options) *State {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cfg := opts.Config
	s := &State{
		cfg:         cfg,
		version:     opts.Version,
		homebrew:    opts.Homebrew,
		worker:      opts.Worker,
		prefs:       opts.Prefs,
		launcher:    opts.Launcher,
		branches:    opts.Branches,
		namer:       opts.Names,
		restore:     opts.Restore,
		now:         now,
		worktrees:   map[string][]workspace.WorktreeEntry{},
		display:     map[string]string{},
		expanded:    map[string]bool{},
		tree:        newTreeList(),
		themeIndex:  theme.Index(cfg.Theme),
		editor:      cfg.EditorCommand(),
		terminal:    cfg.Terminal,
		nameMode:    names.ParseMode(cfg.DefaultWorktreeName),
		knownLatest: cfg.KnownLatestVersion,
	}
	s.initUpdatePrompt()
	s.initSetup()
	s.applyRestore()
	s.requestEnvInfo()
	s.requestUpdateCheck()
	s.requestAllData(false)
	return s
}

func (s *State) updatesEnabled() bool {
	return s.cfg.CheckUpdates && (s.cfg.ForceUpgradePrompt || s.homebrew)
}

func (s *State) initUpdatePrompt() {
	if !s.updatesEnabled() || s.knownLatest == "" {
		return
	}
	if update.IsNewer(s.knownLatest, s.version) {
		s.update = &UpdatePrompt{Current: s.version, Latest: s.knownLatest}
	}
}

func (s *State) initSetup() {
	s.setupSteps = nil
	if !s.cfg.DefaultWorktreeNameSet {
		s.setupSteps = append(s.setupSteps, SetupWorktreeNames)
	}
	if !s.cfg.EditorConfigured() {
		s.setupSteps = append(s.setupSteps, SetupEditor)
	}
	if !s.cfg.TerminalConfigured() {
		s.setupSteps = append(s.setupSteps, SetupTerminal)
	}
	s.startSetupStep()
}

func (s *State) startSetupStep() {
	if len(s.setupSteps) == 0 {
		s.setup = nil
		return
	}
	s.setup = newSetupState(s.setupSteps[0], s.launcher)
}

// applyRestore records the saved selection; it is applied when the first
// listing arrives. A saved worktree wins over a saved repo.
func (s *State) applyRestore() {
	saved := s.restore.Load()
	s.expanded = map[string]bool{}
	for _, name := range saved.Expanded {
		s.expanded[name] = true
	}
	s.desiredRepo = ""
	s.desiredWorktree = nil
	switch {
	case saved.SelectedWorktreeRepo != "" && saved.SelectedWorktreeName != "":
		key := WorktreeKey(saved.SelectedWorktreeRepo, saved.SelectedWorktreeName)
		s.desiredWorktree = &key
	case saved.SelectedRepo != "":
		s.desiredRepo = saved.SelectedRepo
	}
}

// PersistRestore saves the expanded repos and the current selection.
func (s *State) PersistRestore() {
	var saved restore.State
	for name := range s.expanded {
		saved.Expanded = append(saved.Expanded, name)
	}
	sort.Strings(saved.Expanded)
	if key := s.tree.currentKey(); key != nil {
		if key.Worktree != "" {
			saved.SelectedWorktreeRepo = key.Repo
			saved.SelectedWorktreeName = key.Worktree
		} else {
			saved.SelectedRepo = key.Repo
		}
	}
	if err := s.restore.Save(saved); err != nil {
		log.Printf("restore: %v", err)
	}
}

// HandleKey routes a key to the active mode and reports whether to quit.
func (s *State) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case s.update != nil:
		return s.handleUpdateKey(msg)
	case s.setup != nil:
		return s.handleSetupKey(msg)
	case s.focus == FocusInput && s.input != nil:
		s.handleInputKey(msg)
		return false
	}
	return s.handleListKey(msg)
}

func (s *State) handleListKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyCtrlC:
		return true
	case tea.KeyLeft:
		s.collapseSelected()
	case tea.KeyRight, tea.KeyTab:
		s.expandSelected()
	case tea.KeyUp:
		s.tree.move(-1)
	case tea.KeyDown:
		s.tree.move(1)
	case tea.KeyEnter:
		if s.selectedEntry() != nil {
			s.openInEditor()
		} else {
			s.toggleSelected()
		}
	case tea.KeySpace:
		s.toggleSelected()
	case tea.KeyEsc:
		s.clearStatus()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return false
		}
		switch msg.Runes[0] {
		case 'q':
			return true
		case ' ':
			s.toggleSelected()
		case 'c':
			s.openPrompt(cloneInput{}, "")
		case 'n':
			s.openWorktreePrompt()
		case 'd':
			s.openDeletePrompt()
		case 't':
			s.openInTerminal()
		case 'h':
			s.cycleTheme(1)
		case 'H':
			s.cycleTheme(-1)
		case 'k':
			s.tree.move(-1)
		case 'j':
			s.tree.move(1)
		}
	}
	return false
}

func (s *State) handleSetupKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyCtrlC:
		return true
	case tea.KeyUp:
		s.setup.move(-1)
	case tea.KeyDown:
		s.setup.move(1)
	case tea.KeyEnter:
		s.applySetup()
	}
	return false
}

func (s *State) applySetup() {
	if s.setup.Selected >= len(s.setup.Options) {
		return
	}
	choice := s.setup.Options[s.setup.Selected]
	switch s.setup.Step {
	case SetupWorktreeNames:
		mode := names.ParseMode(choice.Value)
		if err := s.prefs.SaveDefaultWorktreeName(string(mode)); err != nil {
			s.setError(fmt.Sprintf("Failed to save default worktree names preference: %v", err))
			return
		}
		s.nameMode = mode
	case SetupEditor:
		if !choice.Skip {
			if err := s.prefs.SaveEditor(choice.Value); err != nil {
				s.setError(fmt.Sprintf("Failed to save editor: %v", err))
				return
			}
			s.editor = choice.Value
		}
	case SetupTerminal:
		if !choice.Skip {
			if err := s.prefs.SaveTerminal(choice.Value); err != nil {
				s.setError(fmt.Sprintf("Failed to save terminal: %v", err))
				return
			}
			s.terminal = choice.Value
		}
	}
	if len(s.setupSteps) > 0 {
		s.setupSteps = s.setupSteps[1:]
	}
	s.startSetupStep()
}

func (s *State) handleUpdateKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyCtrlC {
		return true
	}
	p := s.update
	if p.Completed {
		return msg.Type == tea.KeyEnter
	}
	if p.Running {
		return false
	}
	switch msg.Type {
	case tea.KeyUp:
		p.move(-1)
	case tea.KeyDown:
		p.move(1)
	case tea.KeyEnter:
		s.applyUpdateChoice()
	}
	return false
}

func (s *State) applyUpdateChoice() {
	switch s.update.Selected {
	case updateOptionUpgrade:
		s.update.Running = true
		s.update.Completed = false
		s.worker.Submit(RunUpgrade{})
	case updateOptionLater:
		s.update = nil
	case updateOptionNever:
		if err := s.prefs.SaveCheckUpdates(false); err != nil {
			s.setError(fmt.Sprintf("Failed to update config: %v", err))
			return
		}
		s.update = nil
	}
}

func (s *State) handleInputKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		s.focus = s.input.Origin
		s.input = nil
	case tea.KeyEnter:
		in := s.input
		s.input = nil
		s.focus = s.submit(in)
	default:
		s.input.edit(msg)
	}
}

func (s *State) openPrompt(kind InputKind, buffer string) {
	s.input = newInput(kind, buffer, s.focus, theme.New(s.Theme()))
	s.focus = FocusInput
}

// reprompt opens the next (or the same) step of a flow and keeps focus in
// the input.
func (s *State) reprompt(kind InputKind, buffer string, origin Focus) Focus {
	s.input = newInput(kind, buffer, origin, theme.New(s.Theme()))
	return FocusInput
}

func (s *State) openWorktreePrompt() {
	repo, ok := s.selectedRepo()
	if !ok {
		s.setError("Select a repo first")
		return
	}
	source := s.branches.DefaultBranch(repo)
	name := names.Suggest(source, source, s.nameMode, s.worktreeNames(repo.Name))
	s.openPrompt(worktreeNameInput{repo: repo}, name)
}

func (s *State) openDeletePrompt() {
	switch item := s.tree.current().(type) {
	case *RepoItem:
		s.openPrompt(deleteRepoInput{name: item.Name}, "")
	case *WorktreeItem:
		repo, ok := s.selectedRepo()
		if !ok {
			s.setError("Select a repo first")
			return
		}
		s.openPrompt(deleteWorktreeInput{repo: repo, name: item.Entry.Worktree.DisplayName()}, "")
	default:
		s.setError("Select a repo or worktree to delete")
	}
}

// submit acts on a finished prompt and returns the focus to land on.
func (s *State) submit(in *InputState) Focus {
	value := strings.TrimSpace(in.Value())
	switch k := in.Kind.(type) {
	case cloneInput:
		if value == "" {
			s.setError("Git url required")
			return in.Origin
		}
		s.setLoading(LoadingAction, "Cloning repo", PriorityAction)
		s.worker.Submit(CheckoutRepo{URL: value})

	case worktreeNameInput:
		if err := validate.WorktreeName(value); err != nil {
			s.setError(err.Error())
			return s.reprompt(k, in.Value(), in.Origin)
		}
		source := s.branches.DefaultBranch(k.repo)
		return s.reprompt(worktreeSourceInput{repo: k.repo, name: value}, source, in.Origin)

	case worktreeSourceInput:
		if err := validate.BranchName(value); err != nil {
			s.setError(err.Error())
			return s.reprompt(k, in.Value(), in.Origin)
		}
		branch := value
		if value == s.branches.DefaultBranch(k.repo) {
			branch = s.namer.BranchName(k.name, s.cfg.GitHubPrefix)
		}
		next := worktreeBranchInput{repo: k.repo, name: k.name, source: value}
		return s.reprompt(next, branch, in.Origin)

	case worktreeBranchInput:
		if err := validate.BranchName(value); err != nil {
			s.setError(err.Error())
			return s.reprompt(k, in.Value(), in.Origin)
		}
		s.setLoading(LoadingAction, "Creating worktree "+s.worktreeLabel(k.repo.Name, k.name), PriorityAction)
		s.worker.Submit(CreateWorktree{Repo: k.repo, Name: k.name, Branch: value, SourceBranch: k.source})

	case deleteRepoInput:
		if !confirmed(value, "yes") {
			s.setStatus("Delete canceled")
			return in.Origin
		}
		s.setLoading(LoadingAction, "Deleting repo "+s.displayRepo(k.name), PriorityAction)
		s.worker.Submit(DeleteRepo{Name: k.name})

	case deleteWorktreeInput:
		if !confirmed(value, "yes") {
			s.setStatus("Delete canceled")
			return in.Origin
		}
		label := s.worktreeLabel(k.repo.Name, k.name)
		if n := s.changeCount(k.repo.Name, k.name); n > 0 {
			files := "1 changed file"
			if n > 1 {
				files = fmt.Sprintf("%d changed files", n)
			}
			s.setError(fmt.Sprintf("%s has %s. Type 'discard' to delete and lose those changes.", label, files))
			return s.reprompt(discardWorktreeInput{repo: k.repo, name: k.name}, "", in.Origin)
		}
		s.setLoading(LoadingAction, "Deleting worktree "+label, PriorityAction)
		s.worker.Submit(DeleteWorktree{Repo: k.repo, Name: k.name})

	case discardWorktreeInput:
		if !confirmed(value, "discard") {
			s.setStatus("Delete canceled")
			return in.Origin
		}
		s.setLoading(LoadingAction, "Deleting worktree "+s.worktreeLabel(k.repo.Name, k.name), PriorityAction)
		s.worker.Submit(DeleteWorktree{Repo: k.repo, Name: k.name, Force: true})
	}
	return in.Origin
}

func (s *State) toggleSelected() {
	item, ok := s.tree.current().(*RepoItem)
	if !ok {
		return
	}
	if s.expanded[item.Name] {
		delete(s.expanded, item.Name)
	} else {
		s.expanded[item.Name] = true
	}
	s.rebuild(ptr(RepoKey(item.Name)))
}

func (s *State) collapseSelected() {
	item := s.tree.current()
	if item == nil {
		return
	}
	name := item.RepoName()
	if !s.expanded[name] {
		return
	}
	delete(s.expanded, name)
	s.rebuild(ptr(RepoKey(name)))
}

func (s *State) expandSelected() {
	item, ok := s.tree.current().(*RepoItem)
	if !ok || s.expanded[item.Name] {
		return
	}
	s.expanded[item.Name] = true
	s.rebuild(ptr(RepoKey(item.Name)))
}

func (s *State) openInEditor() {
	entry := s.selectedEntry()
	if entry == nil {
		s.setError("Select a worktree first")
		return
	}
	label := s.worktreeLabel(entry.Repo, entry.Entry.Worktree.DisplayName())
	path := entry.Entry.Worktree.Path

	target := "editor"
	var err error
	if s.editor != "" {
		err = s.launcher.OpenEditor(s.editor, path)
	} else {
		found := s.launcher.Detect()
		if len(found) == 0 {
			s.setError("Failed to open editor: no editor configured; set editor in config.toml")
			return
		}
		target = found[0].Label()
		err = s.launcher.OpenTarget(found[0], path)
	}
	if err != nil {
		s.setError(fmt.Sprintf("Failed to open %s: %v", target, err))
		return
	}
	s.setStatus(fmt.Sprintf("Opened %s in %s", label, target))
}

func (s *State) openInTerminal() {
	entry := s.selectedEntry()
	if entry == nil {
		s.setError("Select a worktree first")
		return
	}
	label := s.worktreeLabel(entry.Repo, entry.Entry.Worktree.DisplayName())
	if err := s.launcher.OpenTerminal(entry.Entry.Worktree.Path, s.terminal); err != nil {
		s.setError(fmt.Sprintf("Failed to open terminal: %v", err))
		return
	}
	s.setStatus(fmt.Sprintf("Opened %s in terminal", label))
}

func (s *State) cycleTheme(delta int) {
	s.themeIndex = theme.Cycle(s.themeIndex, delta)
	if err := s.prefs.SaveTheme(s.Theme().Name); err != nil {
		s.setError(fmt.Sprintf("Failed to save theme: %v", err))
	}
}

func (s *State) requestEnvInfo() {
	s.setLoading(LoadingEnvInfo, "Loading environment", PriorityBackground)
	s.worker.Submit(LoadEnvInfo{})
}

func (s *State) requestUpdateCheck() {
	if s.updatesEnabled() {
		s.worker.Submit(CheckForUpdate{})
	}
}

// requestAllData starts a listing. Only the newest request's answer is
// applied; silent reloads show no loading message.
func (s *State) requestAllData(silent bool) {
	s.seq++
	s.pending = s.seq
	s.needsReload = false
	if !silent {
		s.setLoading(LoadingRepos, "Loading repos", PriorityBackground)
		s.setLoading(LoadingWorktrees, "Loading worktrees", PriorityBackground)
	}
	s.worker.Submit(LoadAll{ID: s.seq})
}

// Drain applies every event already queued without blocking.
func (s *State) Drain(events <-chan Event) {
	for {
		select {
		case ev := <-events:
			s.HandleEvent(ev)
		default:
			return
		}
	}
}

func (s *State) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case AllDataLoaded:
		s.applyAllData(e)
	case EnvInfoLoaded:
		s.loading.clear(LoadingEnvInfo)
		s.env = e.Info
	case UpdateCheckResult:
		if e.Latest == "" || !update.IsNewer(e.Latest, s.version) || e.Latest == s.knownLatest {
			return
		}
		if err := s.prefs.SaveKnownLatestVersion(e.Latest); err != nil {
			log.Printf("update check: %v", err)
			return
		}
		s.knownLatest = e.Latest
	case UpgradeResult:
		if s.update != nil {
			s.update.Running = false
			s.update.Completed = e.Err == ""
		}
		if e.Err != "" {
			s.setError("Upgrade failed: " + e.Err)
			return
		}
		s.setStatus("Upgrade complete. Press Enter to quit and relaunch.")
	case FsChanged:
		if s.pending != 0 {
			s.needsReload = true
			return
		}
		s.requestAllData(true)
	case CheckoutRepoResult:
		s.loading.clear(LoadingAction)
		if e.Err != "" {
			s.setError(e.Err)
			return
		}
		s.setStatus("Checked out " + s.displayRepo(e.Repo.Name))
		s.desiredRepo = e.Repo.Name
		s.requestAllData(false)
	case WorktreeScriptStarted:
		s.setLoading(LoadingAction, fmt.Sprintf("Running %s script %s", e.Kind, e.Path), PriorityAction)
	case CreateWorktreeResult:
		s.loading.clear(LoadingAction)
		if e.Err != "" {
			s.setError(e.Err)
			return
		}
		name := e.Worktree.DisplayName()
		s.setStatus("Created worktree " + s.worktreeLabel(e.RepoName, name))
		selection := e.Worktree.Branch
		if selection == "" {
			selection = name
		}
		s.desiredWorktree = ptr(WorktreeKey(e.RepoName, selection))
		s.requestAllData(false)
		if e.ScriptErr != "" {
			s.setError(e.ScriptErr)
		}
	case DeleteRepoResult:
		s.loading.clear(LoadingAction)
		if e.Err != "" {
			s.setError(e.Err)
			return
		}
		s.setStatus("Deleted repo " + s.displayRepo(e.Name))
		s.requestAllData(false)
	case DeleteWorktreeResult:
		s.loading.clear(LoadingAction)
		if e.Err != "" {
			s.setError(e.Err)
			return
		}
		s.setStatus("Deleted worktree " + s.worktreeLabel(e.RepoName, e.WorktreeName))
		s.requestAllData(false)
	}
}

func (s *State) applyAllData(e AllDataLoaded) {
	if s.pending == 0 || e.ID != s.pending {
		return
	}
	s.pending = 0
	s.loading.clear(LoadingRepos)
	s.loading.clear(LoadingWorktrees)

	if e.Err != "" {
		s.repos = nil
		s.worktrees = map[string][]workspace.WorktreeEntry{}
		s.display = map[string]string{}
		s.expanded = map[string]bool{}
		s.tree.set(nil, nil)
		s.setError(e.Err)
	} else {
		prev := s.tree.currentKey()
		s.repos = e.Data.Repos
		s.worktrees = e.Data.Worktrees
		if s.worktrees == nil {
			s.worktrees = map[string][]workspace.WorktreeEntry{}
		}
		s.display = e.Data.Display
		if s.display == nil {
			s.display = map[string]string{}
		}
		for name := range s.expanded {
			if !s.hasRepo(name) {
				delete(s.expanded, name)
			}
		}

		preferred := prev
		switch {
		case s.desiredWorktree != nil:
			preferred = s.desiredWorktree
			s.expanded[preferred.Repo] = true
		case s.desiredRepo != "":
			preferred = ptr(RepoKey(s.desiredRepo))
		}
		s.desiredWorktree = nil
		s.desiredRepo = ""
		s.rebuild(preferred)
		if e.Data.Err != "" {
			s.setError(e.Data.Err)
		}
	}

	if s.needsReload {
		s.requestAllData(true)
	}
}

func (s *State) rebuild(preferred *TreeKey) {
	s.tree.set(buildTree(s.repos, s.worktrees, s.display, s.expanded), preferred)
}

func (s *State) hasRepo(name string) bool {
	for _, r := range s.repos {
		if r.Name == name {
			return true
		}
	}
	return false
}

func (s *State) selectedRepo() (git.Repo, bool) {
	item := s.tree.current()
	if item == nil {
		return git.Repo{}, false
	}
	name := item.RepoName()
	for _, r := range s.repos {
		if r.Name == name {
			return r, true
		}
	}
	return git.Repo{}, false
}

func (s *State) selectedEntry() *WorktreeItem {
	item, _ := s.tree.current().(*WorktreeItem)
	return item
}

func (s *State) worktreeNames(repo string) map[string]bool {
	set := map[string]bool{}
	for _, e := range s.worktrees[repo] {
		set[e.Worktree.DisplayName()] = true
	}
	return set
}

func (s *State) changeCount(repo, name string) int {
	for _, e := range s.worktrees[repo] {
		if e.Worktree.DisplayName() == name {
			return len(e.ChangedFiles)
		}
	}
	return 0
}

func (s *State) displayRepo(name string) string {
	if display := s.display[name]; display != "" {
		return display
	}
	return name
}

func (s *State) worktreeLabel(repo, name string) string {
	return s.displayRepo(repo) + "/" + name
}

func (s *State) setStatus(text string) { s.setStatusTone(text, StatusSuccess) }

func (s *State) setError(text string) { s.setStatusTone(text, StatusError) }

func (s *State) setStatusTone(text string, tone StatusTone) {
	if text == "" {
		s.clearStatus()
		return
	}
	s.status = &StatusMessage{Text: text, Tone: tone, Deadline: s.now().Add(statusDuration(text))}
}

func (s *State) clearStatus() { s.status = nil }

// setLoading replaces the group's message. Action work hides any status so
// the spinner is visible.
func (s *State) setLoading(group LoadingGroup, text string, priority LoadingPriority) {
	if text == "" {
		s.loading.clear(group)
		return
	}
	if priority == PriorityAction {
		s.clearStatus()
	}
	s.loading.set(LoadingMessage{Group: group, Text: text, StartedAt: s.now(), Priority: priority})
}

// Tick expires the status message once its deadline passes.
func (s *State) Tick() {
	if s.status != nil && s.status.expired(s.now()) {
		s.status = nil
	}
}

func (s *State) Theme() theme.Theme { return theme.Themes[s.themeIndex] }

func (s *State) Status() *StatusMessage { return s.status }

func (s *State) Loading() (LoadingMessage, bool) { return s.loading.current() }

// EffectiveFocus is the pane to highlight: an open prompt keeps its origin
// pane highlighted.
func (s *State) EffectiveFocus() Focus {
	if s.focus == FocusInput && s.input != nil {
		return s.input.Origin
	}
	return s.focus
}

func ptr[T any](v T) *T { return &v }
