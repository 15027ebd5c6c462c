package tui

import (
	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/workspace"
)

// TreeKey names a tree row independently of its position. Worktree is empty
// for repo rows.
type TreeKey struct {
	Repo     string
	Worktree string
}

func RepoKey(name string) TreeKey { return TreeKey{Repo: name} }

func WorktreeKey(repo, name string) TreeKey { return TreeKey{Repo: repo, Worktree: name} }

// TreeItem is a row of the flattened tree: *RepoItem or *WorktreeItem.
type TreeItem interface {
	Key() TreeKey
	RepoName() string
	matches(key TreeKey) bool
}

type RepoItem struct {
	Name     string
	Display  string
	Expanded bool
	Count    int
}

type WorktreeItem struct {
	Repo  string
	Entry workspace.WorktreeEntry
}

func (r *RepoItem) Key() TreeKey     { return RepoKey(r.Name) }
func (r *RepoItem) RepoName() string { return r.Name }

func (w *WorktreeItem) RepoName() string { return w.Repo }

func (w *WorktreeItem) Key() TreeKey {
	return WorktreeKey(w.Repo, w.Entry.Worktree.DisplayName())
}

func (r *RepoItem) matches(key TreeKey) bool {
	return key.Worktree == "" && key.Repo == r.Name
}

// A worktree key matches by directory name or by branch, so a selection
// recorded by branch right after creation still finds its row.
func (w *WorktreeItem) matches(key TreeKey) bool {
	return key.Worktree != "" && key.Repo == w.Repo && w.Entry.Worktree.Matches(key.Worktree)
}

// Branch is the row label; detached worktrees have none.
func (w *WorktreeItem) Branch() string {
	if w.Entry.Worktree.Branch == "" {
		return "detached"
	}
	return w.Entry.Worktree.Branch
}

// buildTree flattens repos in order, each followed by its worktrees when
// expanded.
func buildTree(repos []git.Repo, worktrees map[string][]workspace.WorktreeEntry, display map[string]string, expanded map[string]bool) []TreeItem {
	var items []TreeItem
	for _, repo := range repos {
		name := display[repo.Name]
		if name == "" {
			name = repo.Name
		}
		entries := worktrees[repo.Name]
		open := expanded[repo.Name]
		items = append(items, &RepoItem{Name: repo.Name, Display: name, Expanded: open, Count: len(entries)})
		if !open {
			continue
		}
		for _, e := range entries {
			items = append(items, &WorktreeItem{Repo: repo.Name, Entry: e})
		}
	}
	return items
}

// treeList is the flattened tree and its cursor. selected is -1 exactly when
// items is empty.
type treeList struct {
	items    []TreeItem
	selected int
}

func newTreeList() treeList {
	return treeList{selected: -1}
}

func (t *treeList) set(items []TreeItem, preferred *TreeKey) {
	t.items = items
	t.clamp()
	if preferred != nil {
		t.selectKey(*preferred)
	}
}

func (t *treeList) clamp() {
	switch {
	case len(t.items) == 0:
		t.selected = -1
	case t.selected < 0:
		t.selected = 0
	case t.selected >= len(t.items):
		t.selected = len(t.items) - 1
	}
}

func (t *treeList) selectKey(key TreeKey) bool {
	for i, item := range t.items {
		if item.matches(key) {
			t.selected = i
			return true
		}
	}
	return false
}

// move steps the cursor by delta, wrapping at both ends.
func (t *treeList) move(delta int) {
	if len(t.items) == 0 {
		t.selected = -1
		return
	}
	t.selected = wrap(max(t.selected, 0), delta, len(t.items))
}

func (t *treeList) current() TreeItem {
	if t.selected < 0 || t.selected >= len(t.items) {
		return nil
	}
	return t.items[t.selected]
}

func (t *treeList) currentKey() *TreeKey {
	item := t.current()
	if item == nil {
		return nil
	}
	key := item.Key()
	return &key
}
