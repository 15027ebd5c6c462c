package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicobailon/bbq/internal/paths"
)

func TestWatcherRelevant(t *testing.T) {
	layout := paths.New("/home/me/.bbq", "/home/me/.bbq")
	w := NewWatcher(layout, nil)

	tests := []struct {
		path string
		want bool
	}{
		{"/home/me/.bbq/repos/alpha.git", true},
		{"/home/me/.bbq/repos/alpha.git/HEAD", true},
		{"/home/me/.bbq/repos/alpha.git/packed-refs", true},
		{"/home/me/.bbq/repos/alpha.git/refs/heads/main", true},
		{"/home/me/.bbq/repos/alpha.git/objects/ab/cdef", false},
		{"/home/me/.bbq/repos/alpha.git/FETCH_HEAD", false},
		{"/home/me/.bbq/repos", false},
		{"/home/me/.bbq/worktrees/alpha", true},
		{"/home/me/.bbq/worktrees/alpha/tokyo", false},
		{"/home/me/.bbq/worktrees", false},
		{"/home/me/.bbq/config.toml", false},
		{"/tmp/elsewhere", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.relevant(tt.path), tt.path)
	}
}

func TestWatcherDebounce(t *testing.T) {
	w := NewWatcher(paths.New("/x", "/x"), nil)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, w.admit(t0))
	assert.False(t, w.admit(t0.Add(100*time.Millisecond)))
	assert.False(t, w.admit(t0.Add(249*time.Millisecond)))
	assert.True(t, w.admit(t0.Add(250*time.Millisecond)))
	assert.False(t, w.admit(t0.Add(300*time.Millisecond)))
}

func TestWatcherReportsNewRepo(t *testing.T) {
	root := t.TempDir()
	layout := paths.New(root, root)
	require.NoError(t, layout.EnsureDirs())

	events := make(chan Event, 8)
	w := NewWatcher(layout, events)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// fsnotify registers asynchronously; keep poking until an event lands.
	deadline := time.After(5 * time.Second)
	for i := 0; ; i++ {
		require.NoError(t, os.MkdirAll(filepath.Join(layout.Repos, "r"+string(rune('a'+i%26))+".git"), 0o755))
		select {
		case ev := <-events:
			assert.Equal(t, FsChanged{}, ev)
			cancel()
			assert.NoError(t, <-done)
			return
		case <-deadline:
			t.Fatal("no FsChanged event")
		case <-time.After(300 * time.Millisecond):
		}
	}
}
