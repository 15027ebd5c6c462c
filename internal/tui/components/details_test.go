package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/tui/theme"
	"github.com/nicobailon/bbq/internal/workspace"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "main", Truncate("main", 10))
	assert.Equal(t, "featu…", Truncate("feature/login", 6))
	assert.Equal(t, "", Truncate("main", 0))
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "~/x", TruncateLeft("~/x", 5))
	assert.Equal(t, "…/tokyo", TruncateLeft("~/.bbq/worktrees/alpha/tokyo", 7))
	assert.Equal(t, "…", TruncateLeft("abc", 1))
}

func TestLeftRightFillsWidth(t *testing.T) {
	plain := lipgloss.NewStyle()
	line := LeftRight("feature/very-long-branch-name", "tokyo", 20, plain, plain)
	assert.Equal(t, 20, lipgloss.Width(line))
	assert.True(t, strings.HasSuffix(line, "tokyo"))
}

func TestWorktreeListsChangesWithOverflow(t *testing.T) {
	s := theme.New(theme.Themes[0])
	entry := workspace.WorktreeEntry{
		Worktree:    git.Worktree{Path: "/wt/alpha/tokyo", Branch: "me/tokyo", Head: "0123456789abcdef"},
		HeadAuthor:  "Ana",
		DisplayPath: "~/.bbq/worktrees/alpha/tokyo",
		SyncStatus:  "up to date",
	}
	for i := range 10 {
		entry.ChangedFiles = append(entry.ChangedFiles, git.ChangedFile{Path: fmt.Sprintf("f%d.go", i), Added: i})
	}

	out := Worktree(s, entry, "alpha", 60, 12)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12)
	assert.Contains(t, out, "0123456 - Ana")
	assert.Contains(t, out, "(+7 more)")
	assert.Contains(t, out, "f0.go")
}

func TestEnvShowsUnknownVersions(t *testing.T) {
	s := theme.New(theme.Themes[0])
	out := Env(s, "", "", "2.4.0", 60)
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "git (unknown)")
	assert.Contains(t, out, "gh v2.4.0")
}
