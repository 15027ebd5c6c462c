// Package git manages bare clones and their linked worktrees.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nicobailon/bbq/internal/paths"
	"github.com/nicobailon/bbq/internal/shell"
)

var (
	ErrInvalidGitURL         = errors.New("invalid git url")
	ErrInvalidRepoName       = errors.New("invalid repo name")
	ErrInvalidBranchName     = errors.New("invalid branch name")
	ErrInvalidWorktreeName   = errors.New("invalid worktree name")
	ErrRepoAlreadyExists     = errors.New("repo already exists")
	ErrRepoNotFound          = errors.New("repo not found")
	ErrWorktreeAlreadyExists = errors.New("worktree already exists")
	ErrWorktreeNotFound      = errors.New("worktree not found")
	ErrRepoHasWorktrees      = errors.New("repo has worktrees; remove them first")
	ErrGitHubCliMissing      = errors.New("github cli (gh) not found; install it or use a git url")
)

// CommandError is a failed git or gh invocation.
type CommandError struct {
	Tool    string
	Command string
	Stderr  string
}

func (e *CommandError) Error() string {
	label := "git command failed"
	if e.Tool == "gh" {
		label = "github cli command failed"
	}
	return fmt.Sprintf("%s: %s\n%s", label, e.Command, e.Stderr)
}

type Repo struct {
	Name string
	Path string
}

type Worktree struct {
	Path   string
	Branch string
	Head   string
}

// DisplayName is the worktree directory name, or the branch when the path
// has no usable base.
func (w Worktree) DisplayName() string {
	base := filepath.Base(w.Path)
	if base != "" && base != "." && base != string(filepath.Separator) {
		return base
	}
	if w.Branch != "" {
		return w.Branch
	}
	return w.Path
}

// Matches reports whether name refers to w by directory or branch.
func (w Worktree) Matches(name string) bool {
	return w.DisplayName() == name || (w.Branch != "" && w.Branch == name)
}

type Git struct {
	Layout paths.Layout
	Cmd    shell.Commander
}

func New(layout paths.Layout) *Git {
	return &Git{Layout: layout, Cmd: &shell.ExecCommander{}}
}

func (g *Git) run(args ...string) (string, error) {
	out, err := g.Cmd.Run("git", args...)
	if err != nil {
		return "", commandError("git", args, err)
	}
	return string(out), nil
}

// runIn runs git against a bare repository.
func (g *Git) runIn(repoPath string, args ...string) (string, error) {
	return g.run(append([]string{"--git-dir", repoPath}, args...)...)
}

// runAt runs git inside a worktree checkout.
func (g *Git) runAt(dir string, args ...string) (string, error) {
	return g.run(append([]string{"-C", dir}, args...)...)
}

func (g *Git) gh(args ...string) (string, error) {
	out, err := g.Cmd.Run("gh", args...)
	if err != nil {
		if shell.NotFound(err) {
			return "", ErrGitHubCliMissing
		}
		return "", commandError("gh", args, err)
	}
	return string(out), nil
}

func commandError(tool string, args []string, err error) error {
	stderr := shell.Stderr(err)
	if stderr == "" {
		stderr = err.Error()
	}
	return &CommandError{
		Tool:    tool,
		Command: tool + " " + strings.Join(args, " "),
		Stderr:  stderr,
	}
}

func firstLine(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line)
}
