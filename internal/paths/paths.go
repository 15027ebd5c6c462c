// Package paths resolves the directories bbq keeps its clones and worktrees in.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicobailon/bbq/internal/config"
)

const rootEnv = "BBQ_ROOT_DIR"

// Layout is the resolved directory tree. Repos holds bare clones named
// NAME.git, Worktrees holds one directory per repo.
type Layout struct {
	ConfigDir string
	Root      string
	Repos     string
	Worktrees string
}

// Resolve picks the root from BBQ_ROOT_DIR, then the root_dir setting, then
// the config directory itself.
func Resolve(cfg *config.Config) (Layout, error) {
	configDir, err := config.Dir()
	if err != nil {
		return Layout{}, err
	}

	root := configDir
	if env := os.Getenv(rootEnv); env != "" {
		root = env
	} else if cfg != nil && cfg.RootDir != "" {
		expanded, err := ExpandHome(cfg.RootDir)
		if err != nil {
			return Layout{}, err
		}
		root = expanded
	}
	return New(configDir, root), nil
}

func New(configDir, root string) Layout {
	return Layout{
		ConfigDir: configDir,
		Root:      root,
		Repos:     filepath.Join(root, "repos"),
		Worktrees: filepath.Join(root, "worktrees"),
	}
}

func (l Layout) EnsureDirs() error {
	if err := os.MkdirAll(l.Repos, 0o755); err != nil {
		return err
	}
	return os.MkdirAll(l.Worktrees, 0o755)
}

// RepoPath is where the bare clone named name lives.
func (l Layout) RepoPath(name string) string {
	return filepath.Join(l.Repos, name+".git")
}

// WorktreeDir is the parent directory of every worktree of repo.
func (l Layout) WorktreeDir(repo string) string {
	return filepath.Join(l.Worktrees, repo)
}

func ExpandHome(value string) (string, error) {
	if value != "~" && !strings.HasPrefix(value, "~/") {
		return value, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", config.ErrHomeNotFound
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(value, "~"), "/")), nil
}

// Tilde shortens path with ~ when it sits under the home directory.
func Tilde(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~/" + rel
	}
	return path
}
