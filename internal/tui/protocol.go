package tui

import (
	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/workspace"
)

// Request is work handed to the background worker. Every request is
// answered by exactly one result event.
type Request interface {
	isRequest()
}

type LoadEnvInfo struct{}

type LoadAll struct {
	ID uint64
}

type CheckForUpdate struct{}

type RunUpgrade struct{}

type CheckoutRepo struct {
	URL string
}

type CreateWorktree struct {
	Repo         git.Repo
	Name         string
	Branch       string
	SourceBranch string
}

type DeleteRepo struct {
	Name string
}

type DeleteWorktree struct {
	Repo  git.Repo
	Name  string
	Force bool
}

func (LoadEnvInfo) isRequest()    {}
func (LoadAll) isRequest()        {}
func (CheckForUpdate) isRequest() {}
func (RunUpgrade) isRequest()     {}
func (CheckoutRepo) isRequest()   {}
func (CreateWorktree) isRequest() {}
func (DeleteRepo) isRequest()     {}
func (DeleteWorktree) isRequest() {}

// Event flows from the worker and the watcher to the UI. Errors cross this
// boundary as strings; an empty Err means success.
type Event interface {
	isEvent()
}

type EnvInfoLoaded struct {
	Info workspace.EnvInfo
}

type AllDataLoaded struct {
	ID   uint64
	Data workspace.Snapshot
	Err  string
}

// UpdateCheckResult carries the newer version Homebrew reports, or "".
type UpdateCheckResult struct {
	Latest string
}

type UpgradeResult struct {
	Err string
}

// FsChanged is unsolicited; it comes from the watcher.
type FsChanged struct{}

type CheckoutRepoResult struct {
	Repo git.Repo
	Err  string
}

// WorktreeScriptStarted precedes the CreateWorktreeResult of a worktree
// that has a hook to run.
type WorktreeScriptStarted struct {
	Kind string
	Path string
}

type CreateWorktreeResult struct {
	RepoName  string
	Worktree  git.Worktree
	Err       string
	ScriptErr string
}

type DeleteRepoResult struct {
	Name string
	Err  string
}

type DeleteWorktreeResult struct {
	RepoName     string
	WorktreeName string
	Err          string
}

func (EnvInfoLoaded) isEvent()         {}
func (AllDataLoaded) isEvent()         {}
func (UpdateCheckResult) isEvent()     {}
func (UpgradeResult) isEvent()         {}
func (FsChanged) isEvent()             {}
func (CheckoutRepoResult) isEvent()    {}
func (WorktreeScriptStarted) isEvent() {}
func (CreateWorktreeResult) isEvent()  {}
func (DeleteRepoResult) isEvent()      {}
func (DeleteWorktreeResult) isEvent()  {}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
