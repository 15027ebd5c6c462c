package workspace

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/paths"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func execCommand(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	return cmd
}

func run(t *testing.T, dir string, args ...string) {
	t.Helper()
	if out, err := execCommand(dir, args...).CombinedOutput(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
}

func commitAll(t *testing.T, dir, message string) {
	t.Helper()
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "-c", "user.name=Pit Master", "-c", "user.email=pit@example.com",
		"-c", "commit.gpgsign=false", "commit", "-q", "-m", message)
}

func newSource(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	run(t, dir, "git", "init", "-q", "-b", "main")
	if files == nil {
		files = map[string]string{"README.md": "hello\n"}
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		mode := os.FileMode(0o644)
		if filepath.Base(rel) == "post-create" {
			mode = 0o755
		}
		require.NoError(t, os.WriteFile(path, []byte(content), mode))
	}
	commitAll(t, dir, "init")
	return dir
}

func newService(t *testing.T) *Service {
	t.Helper()
	root := t.TempDir()
	g := git.New(paths.New(root, root))
	return NewService(g, nil, nil)
}

func TestLoadAllEmpty(t *testing.T) {
	requireGit(t)
	s := newService(t)
	require.NoError(t, s.Layout.EnsureDirs())

	snap, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Repos)
	assert.Empty(t, snap.Err)
}

func TestLoadAllEntries(t *testing.T) {
	requireGit(t)
	s := newService(t)
	repo, err := s.CheckoutRepo(newSource(t, "brisket", nil))
	require.NoError(t, err)

	created, err := s.CreateWorktree(repo, "smoke", "smoke", "origin/main", nil)
	require.NoError(t, err)
	assert.Empty(t, created.Script)
	require.NoError(t, os.WriteFile(filepath.Join(created.Worktree.Path, "rub.txt"), []byte("salt\npepper\n"), 0o644))

	snap, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Repos, 1)
	assert.Equal(t, "brisket", snap.Repos[0].Name)

	entries := snap.Worktrees["brisket"]
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "smoke", e.Worktree.DisplayName())
	assert.Equal(t, "Pit Master", e.HeadAuthor)
	assert.Equal(t, "init", e.HeadMessage)
	if e.Upstream == "" {
		assert.Equal(t, "no upstream", e.SyncStatus)
	} else {
		assert.Equal(t, "up to date with "+e.Upstream, e.SyncStatus)
	}
	require.Len(t, e.ChangedFiles, 1)
	assert.Equal(t, git.ChangedFile{Path: "rub.txt", Added: 2}, e.ChangedFiles[0])
}

func TestLoadAllNewestFirst(t *testing.T) {
	requireGit(t)
	s := newService(t)
	for _, name := range []string{"alpha", "beta"} {
		_, err := s.CheckoutRepo(newSource(t, name, nil))
		require.NoError(t, err)
	}
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(s.Layout.RepoPath("beta"), old, old))

	snap, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Repos, 2)
	assert.Equal(t, "alpha", snap.Repos[0].Name)
	assert.Equal(t, "beta", snap.Repos[1].Name)
}

func TestLoadAllRecordsBrokenRepo(t *testing.T) {
	requireGit(t)
	s := newService(t)
	_, err := s.CheckoutRepo(newSource(t, "good", nil))
	require.NoError(t, err)
	for _, name := range []string{"broken", "cracked"} {
		broken := s.Layout.RepoPath(name)
		require.NoError(t, os.MkdirAll(broken, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(broken, "HEAD"), []byte("not a ref\n"), 0o644))
	}

	snap, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Repos, 3)
	assert.NotEmpty(t, snap.Err)
	assert.NotContains(t, snap.Err, "\n")
	assert.Empty(t, snap.Worktrees["broken"])
	assert.Empty(t, snap.Worktrees["cracked"])
	assert.Contains(t, snap.Worktrees, "good")
}

func TestJoinFirstLines(t *testing.T) {
	errs := []error{
		errors.New("git worktree list failed\nfatal: not a git repository"),
		errors.New("\ngit worktree list failed in cracked\nfatal: bad HEAD\n"),
	}
	got := joinFirstLines(errs)
	assert.Equal(t, "git worktree list failed; git worktree list failed in cracked", got)
	assert.False(t, strings.Contains(got, "\n"))
}

type fakeCommander struct {
	versions map[string]string
}

func (f *fakeCommander) Run(name string, args ...string) ([]byte, error) {
	if out, ok := f.versions[name]; ok && len(args) == 1 && args[0] == "--version" {
		return []byte(out), nil
	}
	return nil, exec.ErrNotFound
}

func (f *fakeCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	return f.Run(name, args...)
}

func (f *fakeCommander) Start(dir, name string, args ...string) error { return nil }

func TestEnvInfoUsesCommander(t *testing.T) {
	s := newService(t)
	s.Git.Cmd = &fakeCommander{versions: map[string]string{"git": "git version 2.45.1\n"}}

	info := s.EnvInfo()
	assert.Equal(t, "2.45.1", info.GitVersion)
	assert.Empty(t, info.GhVersion)
	assert.NotEmpty(t, info.Root)
}

func TestCreateWorktreeRunsPostCreate(t *testing.T) {
	requireGit(t)
	s := newService(t)
	source := newSource(t, "ribs", map[string]string{
		"README.md":                 "hello\n",
		".bbq/worktree/post-create": "#!/bin/sh\necho ready > hook.txt\n",
	})
	repo, err := s.CheckoutRepo(source)
	require.NoError(t, err)

	var started string
	created, err := s.CreateWorktree(repo, "glaze", "glaze", "origin/main", func(script string) {
		started = script
	})
	require.NoError(t, err)
	require.NoError(t, created.ScriptErr)
	assert.Equal(t, filepath.Join(created.Worktree.Path, ".bbq", "worktree", "post-create"), started)
	assert.Equal(t, started, created.Script)

	data, err := os.ReadFile(filepath.Join(created.Worktree.Path, "hook.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ready\n", string(data))
}

func TestCreateWorktreeReportsScriptFailure(t *testing.T) {
	requireGit(t)
	s := newService(t)
	source := newSource(t, "wings", map[string]string{
		"README.md":                 "hello\n",
		".bbq/worktree/post-create": "#!/bin/sh\nexit 3\n",
	})
	repo, err := s.CheckoutRepo(source)
	require.NoError(t, err)

	created, err := s.CreateWorktree(repo, "hot", "hot", "origin/main", nil)
	require.NoError(t, err)
	require.Error(t, created.ScriptErr)
	assert.Contains(t, created.ScriptErr.Error(), "exit status 3")
	assert.DirExists(t, created.Worktree.Path)
}

func TestDefaultBranchFallback(t *testing.T) {
	requireGit(t)
	s := newService(t)
	repo, err := s.CheckoutRepo(newSource(t, "pork", nil))
	require.NoError(t, err)
	assert.Equal(t, "origin/main", s.DefaultBranch(repo))

	empty := git.Repo{Name: "ghost", Path: filepath.Join(t.TempDir(), "ghost.git")}
	assert.Equal(t, git.FallbackSourceBranch, s.DefaultBranch(empty))
}

func TestCompareTime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, -1, compareTime(now, now.Add(-time.Minute)))
	assert.Equal(t, 1, compareTime(now.Add(-time.Minute), now))
	assert.Equal(t, -1, compareTime(now, time.Time{}))
	assert.Equal(t, 1, compareTime(time.Time{}, now))
	assert.Equal(t, 0, compareTime(time.Time{}, time.Time{}))
}

func TestUpgradeWithoutBrew(t *testing.T) {
	s := &Service{}
	_, ok := s.LatestVersion()
	assert.False(t, ok)
	assert.EqualError(t, s.Upgrade(), "brew upgrade failed")
}
