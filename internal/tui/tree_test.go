package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/workspace"
)

func TestBuildTree(t *testing.T) {
	snap := sample()
	snap.Display["beta"] = "acme/beta"

	items := buildTree(snap.Repos, snap.Worktrees, snap.Display, map[string]bool{"alpha": true})
	require.Len(t, items, 4)

	alpha := items[0].(*RepoItem)
	assert.Equal(t, "alpha", alpha.Display)
	assert.True(t, alpha.Expanded)
	assert.Equal(t, 2, alpha.Count)

	wt := items[1].(*WorktreeItem)
	assert.Equal(t, "alpha", wt.RepoName())
	assert.Equal(t, WorktreeKey("alpha", "tokyo"), wt.Key())

	beta := items[3].(*RepoItem)
	assert.Equal(t, "acme/beta", beta.Display)
	assert.False(t, beta.Expanded)
	assert.Equal(t, 0, beta.Count)
}

func TestDetachedWorktreeLabel(t *testing.T) {
	item := &WorktreeItem{Repo: "alpha", Entry: workspace.WorktreeEntry{Worktree: git.Worktree{Path: "/wt/alpha/x"}}}
	assert.Equal(t, "detached", item.Branch())
}

func TestWorktreeKeyMatchesBranch(t *testing.T) {
	item := &WorktreeItem{Repo: "alpha", Entry: entry("alpha", "tokyo", "me/tokyo", 0)}
	assert.True(t, item.matches(WorktreeKey("alpha", "tokyo")))
	assert.True(t, item.matches(WorktreeKey("alpha", "me/tokyo")))
	assert.False(t, item.matches(WorktreeKey("beta", "tokyo")))
	assert.False(t, item.matches(RepoKey("alpha")))

	repo := &RepoItem{Name: "alpha"}
	assert.True(t, repo.matches(RepoKey("alpha")))
	assert.False(t, repo.matches(WorktreeKey("alpha", "alpha")))
}

func TestTreeListSelection(t *testing.T) {
	list := newTreeList()
	assert.Nil(t, list.current())
	list.move(1)
	assert.Equal(t, -1, list.selected)

	snap := sample()
	items := buildTree(snap.Repos, snap.Worktrees, snap.Display, map[string]bool{"alpha": true})
	list.set(items, nil)
	assert.Equal(t, 0, list.selected)

	list.set(items, &TreeKey{Repo: "alpha", Worktree: "paris"})
	assert.Equal(t, 2, list.selected)

	list.set(items, &TreeKey{Repo: "gone"})
	assert.Equal(t, 2, list.selected, "unknown key keeps the position")

	list.set(items[:1], nil)
	assert.Equal(t, 0, list.selected)

	list.set(nil, &TreeKey{Repo: "alpha"})
	assert.Equal(t, -1, list.selected)
	assert.Nil(t, list.currentKey())
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 2, wrap(0, -1, 3))
	assert.Equal(t, 0, wrap(2, 1, 3))
	assert.Equal(t, 1, wrap(0, 1, 3))
	assert.Equal(t, 0, wrap(0, 1, 0))
}
