package git

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListWorktrees returns the linked worktrees of repo, sorted by display name.
// The bare repository itself is never listed.
func (g *Git) ListWorktrees(repo Repo) ([]Worktree, error) {
	out, err := g.runIn(repo.Path, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktrees(out, repo.Path), nil
}

func parseWorktrees(out, repoPath string) []Worktree {
	var (
		worktrees []Worktree
		current   Worktree
		bare      bool
	)
	flush := func() {
		if current.Path != "" && !bare && filepath.Clean(current.Path) != filepath.Clean(repoPath) {
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
		bare = false
	}

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.TrimSpace(line) == "bare":
			bare = true
		}
	}
	flush()

	sort.SliceStable(worktrees, func(i, j int) bool {
		return worktrees[i].DisplayName() < worktrees[j].DisplayName()
	})
	return worktrees
}

// CreateWorktree checks out branch into a worktree named after it.
func (g *Git) CreateWorktree(repo Repo, branch string) (Worktree, error) {
	return g.CreateWorktreeWithName(repo, branch, branch)
}

// CreateWorktreeWithName creates worktree name for branch. A branch given as
// REMOTE/BRANCH for a known remote tracks that remote branch; a new local
// branch otherwise starts at HEAD.
func (g *Git) CreateWorktreeWithName(repo Repo, name, branch string) (Worktree, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Worktree{}, ErrInvalidWorktreeName
	}
	spec := strings.TrimSpace(branch)
	if spec == "" {
		return Worktree{}, ErrInvalidBranchName
	}
	path, err := g.prepareWorktreePath(repo, name)
	if err != nil {
		return Worktree{}, err
	}

	branchName, start := spec, "HEAD"
	remote, remoteBranch, ok, err := g.splitRemoteBranch(repo, spec)
	if err != nil {
		return Worktree{}, err
	}
	if ok {
		if err := g.fetchRemoteBranch(repo, remote, remoteBranch); err != nil {
			return Worktree{}, err
		}
		branchName, start = remoteBranch, remote+"/"+remoteBranch
	}
	if g.refExists(repo.Path, "refs/heads/"+branchName) {
		start = ""
	}

	if err := g.addWorktree(repo, path, branchName, start); err != nil {
		return Worktree{}, err
	}
	return Worktree{Path: path, Branch: branchName}, nil
}

// CreateWorktreeFrom creates worktree name on branch. When branch does not
// exist yet it is created from sourceBranch, fetching it first when it names
// a remote branch.
func (g *Git) CreateWorktreeFrom(repo Repo, name, branch, sourceBranch string) (Worktree, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Worktree{}, ErrInvalidWorktreeName
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return Worktree{}, ErrInvalidBranchName
	}
	sourceBranch = strings.TrimSpace(sourceBranch)
	if sourceBranch == "" {
		return Worktree{}, ErrInvalidBranchName
	}
	path, err := g.prepareWorktreePath(repo, name)
	if err != nil {
		return Worktree{}, err
	}

	start := ""
	if !g.refExists(repo.Path, "refs/heads/"+branch) {
		start, err = g.resolveSource(repo, sourceBranch)
		if err != nil {
			return Worktree{}, err
		}
	}

	if err := g.addWorktree(repo, path, branch, start); err != nil {
		return Worktree{}, err
	}
	return Worktree{Path: path, Branch: branch}, nil
}

func (g *Git) prepareWorktreePath(repo Repo, name string) (string, error) {
	if err := g.Layout.EnsureDirs(); err != nil {
		return "", err
	}
	dir := g.Layout.WorktreeDir(repo.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrWorktreeAlreadyExists, name)
	}
	return path, nil
}

func (g *Git) addWorktree(repo Repo, path, branch, start string) error {
	args := []string{"worktree", "add"}
	if start != "" {
		args = append(args, "-b", branch, path, start)
	} else {
		args = append(args, path, branch)
	}
	_, err := g.runIn(repo.Path, args...)
	return err
}

func (g *Git) resolveSource(repo Repo, source string) (string, error) {
	remote, branch, ok, err := g.splitRemoteBranch(repo, source)
	if err != nil || !ok {
		return source, err
	}
	if err := g.fetchRemoteBranch(repo, remote, branch); err != nil {
		return "", err
	}
	return remote + "/" + branch, nil
}

// fetchRemoteBranch updates remote and fetches branch explicitly when the
// remote's refspec did not bring it in (bare clones have no fetch refspec).
func (g *Git) fetchRemoteBranch(repo Repo, remote, branch string) error {
	if _, err := g.runIn(repo.Path, "fetch", remote); err != nil {
		return err
	}
	if g.refExists(repo.Path, "refs/remotes/"+remote+"/"+branch) {
		return nil
	}
	refspec := fmt.Sprintf("refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch)
	_, err := g.runIn(repo.Path, "fetch", remote, refspec)
	return err
}

func (g *Git) splitRemoteBranch(repo Repo, spec string) (string, string, bool, error) {
	remote, branch, ok := strings.Cut(spec, "/")
	if !ok || branch == "" {
		return "", "", false, nil
	}
	remotes, err := g.remotes(repo.Path)
	if err != nil {
		return "", "", false, err
	}
	for _, name := range remotes {
		if name == remote {
			return remote, branch, true, nil
		}
	}
	return "", "", false, nil
}

// RemoveWorktree removes the worktree matching name by directory or branch.
func (g *Git) RemoveWorktree(repo Repo, name string, force bool) error {
	worktrees, err := g.ListWorktrees(repo)
	if err != nil {
		return err
	}
	for _, wt := range worktrees {
		if !wt.Matches(name) {
			continue
		}
		args := []string{"worktree", "remove"}
		if force {
			args = append(args, "--force")
		}
		_, err := g.runIn(repo.Path, append(args, wt.Path)...)
		return err
	}
	return fmt.Errorf("%w: %s", ErrWorktreeNotFound, name)
}

// FallbackSourceBranch is offered as the source branch when a repo has no
// detectable default.
const FallbackSourceBranch = "origin/main"

// DefaultRemoteBranch reads origin/HEAD, e.g. "origin/main".
func (g *Git) DefaultRemoteBranch(repo Repo) (string, bool) {
	out, err := g.runIn(repo.Path, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err != nil {
		return "", false
	}
	branch := strings.TrimSpace(strings.TrimPrefix(firstLine(out), "refs/remotes/"))
	return branch, branch != ""
}

// DefaultBranch picks the branch new worktrees start from: origin/HEAD, then
// the bare HEAD (qualified with origin/ when that remote exists), then the
// usual main/master refs.
func (g *Git) DefaultBranch(repo Repo) (string, bool, error) {
	if branch, ok := g.DefaultRemoteBranch(repo); ok {
		return branch, true, nil
	}

	if out, err := g.runIn(repo.Path, "symbolic-ref", "HEAD"); err == nil {
		if branch := strings.TrimSpace(strings.TrimPrefix(firstLine(out), "refs/heads/")); branch != "" {
			remotes, err := g.remotes(repo.Path)
			if err != nil {
				return "", false, err
			}
			for _, remote := range remotes {
				if remote == "origin" {
					return "origin/" + branch, true, nil
				}
			}
			return branch, true, nil
		}
	}

	for _, ref := range []string{
		"refs/remotes/origin/main",
		"refs/remotes/origin/master",
		"refs/heads/main",
		"refs/heads/master",
	} {
		if g.refExists(repo.Path, ref) {
			return ShortRef(ref), true, nil
		}
	}
	return "", false, nil
}

// ShortRef drops the refs/remotes/ or refs/heads/ prefix.
func ShortRef(ref string) string {
	if rest, ok := strings.CutPrefix(ref, "refs/remotes/"); ok {
		return rest
	}
	return strings.TrimPrefix(ref, "refs/heads/")
}
