// Package workspace gathers everything the interactive view shows about the
// repos under the bbq root and performs the operations it triggers.
package workspace

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nicobailon/bbq/internal/deps"
	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/github"
	"github.com/nicobailon/bbq/internal/paths"
	"github.com/nicobailon/bbq/internal/scripts"
	"github.com/nicobailon/bbq/internal/update"
)

const defaultLimit = 8

// ScriptPostCreate names the hook kind reported while it runs.
const ScriptPostCreate = "post-create"

type Service struct {
	Git    *git.Git
	GitHub *github.Client
	Brew   *update.Brew
	Layout paths.Layout

	// Limit bounds the worktrees inspected in parallel during LoadAll.
	Limit int
}

// WorktreeEntry is a worktree plus the status shown in its detail pane.
type WorktreeEntry struct {
	Worktree     git.Worktree
	HeadAuthor   string
	HeadMessage  string
	Upstream     string
	SyncStatus   string
	DisplayPath  string
	ChangedFiles []git.ChangedFile
}

// Snapshot is one full scan. Err is set when some repos could not be listed;
// those repos are present with no worktrees.
type Snapshot struct {
	Repos     []git.Repo
	Worktrees map[string][]WorktreeEntry
	Display   map[string]string
	Err       string
}

type EnvInfo struct {
	Root       string
	GitVersion string
	GhVersion  string
}

// Created is the outcome of CreateWorktree. ScriptErr reports a failed
// post-create hook; the worktree exists regardless.
type Created struct {
	Worktree  git.Worktree
	Script    string
	ScriptErr error
}

func NewService(g *git.Git, gh *github.Client, brew *update.Brew) *Service {
	return &Service{Git: g, GitHub: gh, Brew: brew, Layout: g.Layout, Limit: defaultLimit}
}

func (s *Service) EnvInfo() EnvInfo {
	info := EnvInfo{Root: paths.Tilde(s.Layout.Root)}
	info.GitVersion, _ = deps.Version(s.Git.Cmd, "git")
	info.GhVersion, _ = deps.Version(s.Git.Cmd, "gh")
	return info
}

// LoadAll lists every repo and the status of each of its worktrees. Repos
// and entries come newest first.
func (s *Service) LoadAll(ctx context.Context) (Snapshot, error) {
	repos, err := s.Git.ListRepos()
	if err != nil {
		return Snapshot{}, err
	}
	sortRepos(repos)

	snap := Snapshot{
		Repos:     repos,
		Worktrees: make(map[string][]WorktreeEntry, len(repos)),
		Display:   map[string]string{},
	}

	var scanErrs []error
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.limit())
	for _, repo := range repos {
		worktrees, err := s.Git.ListWorktrees(repo)
		if err != nil {
			scanErrs = append(scanErrs, err)
			snap.Worktrees[repo.Name] = []WorktreeEntry{}
			continue
		}
		entries := make([]WorktreeEntry, len(worktrees))
		snap.Worktrees[repo.Name] = entries
		for i, wt := range worktrees {
			grp.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				entries[i] = s.entry(wt)
				return nil
			})
		}
	}
	if err := grp.Wait(); err != nil {
		return Snapshot{}, err
	}

	for name, entries := range snap.Worktrees {
		sortEntries(entries)
		snap.Worktrees[name] = entries
	}
	if len(scanErrs) > 0 {
		snap.Err = joinFirstLines(scanErrs)
	}

	if s.GitHub != nil && s.GitHub.Available() {
		for _, repo := range repos {
			url, ok := s.Git.RemoteURL(repo, "origin")
			if !ok {
				continue
			}
			if display, ok := github.RepoName(url); ok {
				snap.Display[repo.Name] = display
			}
		}
	}
	return snap, nil
}

func (s *Service) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return defaultLimit
}

// joinFirstLines keeps scan failures to one footer line.
func joinFirstLines(errs []error) string {
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		line, _, _ := strings.Cut(strings.TrimSpace(err.Error()), "\n")
		lines = append(lines, strings.TrimSpace(line))
	}
	return strings.Join(lines, "; ")
}

func (s *Service) entry(wt git.Worktree) WorktreeEntry {
	e := WorktreeEntry{
		Worktree:     wt,
		DisplayPath:  paths.Tilde(wt.Path),
		ChangedFiles: s.Git.ChangedFiles(wt.Path),
	}
	if commit, ok := s.Git.HeadCommit(wt.Path); ok {
		e.HeadAuthor = commit.Author
		e.HeadMessage = commit.Message
	}
	upstream, sync := s.Git.SyncStatus(wt.Path)
	e.Upstream = upstream.Display
	e.SyncStatus = sync
	return e
}

func (s *Service) CheckoutRepo(url string) (git.Repo, error) {
	return s.Git.CheckoutRepo(url, "")
}

// CreateWorktree adds the worktree and then runs its post-create hook, if
// any, calling started just before the hook runs.
func (s *Service) CreateWorktree(repo git.Repo, name, branch, source string, started func(script string)) (Created, error) {
	wt, err := s.Git.CreateWorktreeFrom(repo, name, branch, source)
	if err != nil {
		return Created{}, err
	}
	created := Created{Worktree: wt}
	script, ok := scripts.FindPostCreate(wt.Path)
	if !ok {
		return created, nil
	}
	if started != nil {
		started(script)
	}
	created.Script = script
	created.ScriptErr = scripts.Run(wt.Path, script, scripts.Capture)
	return created, nil
}

func (s *Service) DeleteRepo(name string) error {
	return s.Git.RemoveRepo(name)
}

func (s *Service) DeleteWorktree(repo git.Repo, name string, force bool) error {
	return s.Git.RemoveWorktree(repo, name, force)
}

// DefaultBranch is the source branch offered when creating a worktree.
func (s *Service) DefaultBranch(repo git.Repo) string {
	branch, ok, err := s.Git.DefaultBranch(repo)
	if err != nil || !ok {
		return git.FallbackSourceBranch
	}
	return branch
}

func (s *Service) LatestVersion() (string, bool) {
	if s.Brew == nil {
		return "", false
	}
	return s.Brew.Latest()
}

func (s *Service) Upgrade() error {
	if s.Brew == nil {
		return errors.New("brew upgrade failed")
	}
	return s.Brew.Upgrade()
}

func sortRepos(repos []git.Repo) {
	stamps := make(map[string]time.Time, len(repos))
	for _, r := range repos {
		stamps[r.Path] = pathTime(r.Path)
	}
	sort.SliceStable(repos, func(i, j int) bool {
		if c := compareTime(stamps[repos[i].Path], stamps[repos[j].Path]); c != 0 {
			return c < 0
		}
		return repos[i].Name < repos[j].Name
	})
}

func sortEntries(entries []WorktreeEntry) {
	stamps := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		stamps[e.Worktree.Path] = pathTime(e.Worktree.Path)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Worktree, entries[j].Worktree
		if c := compareTime(stamps[a.Path], stamps[b.Path]); c != 0 {
			return c < 0
		}
		return a.DisplayName() < b.DisplayName()
	})
}

func pathTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// compareTime orders newest first; unknown times sort last.
func compareTime(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	case a.After(b):
		return -1
	case b.After(a):
		return 1
	}
	return 0
}
