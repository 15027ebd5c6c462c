package git

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// ListRepos returns the bare clones under the repos root, sorted by name.
func (g *Git) ListRepos() ([]Repo, error) {
	if err := g.Layout.EnsureDirs(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(g.Layout.Repos)
	if err != nil {
		return nil, err
	}

	var repos []Repo
	for _, entry := range entries {
		path := filepath.Join(g.Layout.Repos, entry.Name())
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			continue
		}
		if info, err := os.Stat(filepath.Join(path, "HEAD")); err != nil || !info.Mode().IsRegular() {
			continue
		}
		repos = append(repos, Repo{Name: strings.TrimSuffix(entry.Name(), ".git"), Path: path})
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })
	return repos, nil
}

// CheckoutRepo makes a bare clone of source. A GitHub owner/repo slug is
// cloned with gh; anything else goes through git clone. An empty name is
// derived from the source.
func (g *Git) CheckoutRepo(source, name string) (Repo, error) {
	if err := g.Layout.EnsureDirs(); err != nil {
		return Repo{}, err
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return Repo{}, ErrInvalidGitURL
	}

	if name != "" {
		name = SanitizeName(name)
	} else {
		derived, err := RepoNameFromURL(source)
		if err != nil {
			return Repo{}, err
		}
		name = derived
	}
	if name == "" {
		return Repo{}, ErrInvalidRepoName
	}

	dest := g.Layout.RepoPath(name)
	if _, err := os.Stat(dest); err == nil {
		return Repo{}, fmt.Errorf("%w: %s", ErrRepoAlreadyExists, name)
	}

	if slug, ok := GitHubSlug(source); ok {
		if !g.GitHubAvailable() {
			return Repo{}, ErrGitHubCliMissing
		}
		if _, err := g.gh("repo", "clone", slug, dest, "--", "--bare"); err != nil {
			return Repo{}, err
		}
	} else if _, err := g.run("clone", "--bare", source, dest); err != nil {
		return Repo{}, err
	}
	return Repo{Name: name, Path: dest}, nil
}

// GitHubAvailable reports whether gh runs.
func (g *Git) GitHubAvailable() bool {
	_, err := g.Cmd.Run("gh", "--version")
	return err == nil
}

// ResolveRepo finds an existing clone by name.
func (g *Git) ResolveRepo(name string) (Repo, error) {
	name = trimGitSuffix(SanitizeName(name))
	if name == "" {
		return Repo{}, ErrInvalidRepoName
	}
	path := g.Layout.RepoPath(name)
	if _, err := os.Stat(path); err != nil {
		return Repo{}, fmt.Errorf("%w: %s", ErrRepoNotFound, name)
	}
	return Repo{Name: name, Path: path}, nil
}

// RemoveRepo deletes a clone that has no worktrees left.
func (g *Git) RemoveRepo(name string) error {
	repo, err := g.ResolveRepo(name)
	if err != nil {
		return err
	}
	worktrees, err := g.ListWorktrees(repo)
	if err != nil {
		return err
	}
	if len(worktrees) > 0 {
		return ErrRepoHasWorktrees
	}
	return os.RemoveAll(repo.Path)
}

// RepoNameFromURL takes the last path segment of a git url or scp-style
// address, without .git.
func RepoNameFromURL(url string) (string, error) {
	tail := strings.TrimSpace(url)
	if tail == "" {
		return "", ErrInvalidGitURL
	}
	if i := strings.LastIndex(tail, ":"); i >= 0 && strings.Contains(tail[:i], "@") {
		tail = tail[i+1:]
	}
	if i := strings.LastIndex(tail, "/"); i >= 0 {
		tail = tail[i+1:]
	}
	name := SanitizeName(trimGitSuffix(tail))
	if name == "" {
		return "", ErrInvalidGitURL
	}
	return name, nil
}

// GitHubSlug recognizes a bare owner/repo reference.
func GitHubSlug(source string) (string, bool) {
	s := strings.TrimSpace(source)
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", false
	}
	if looksLikeURL(s) || isPathLike(s) {
		return "", false
	}
	s = trimGitSuffix(strings.TrimRight(s, "/"))
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}
	if !isSlugPart(parts[0]) || !isSlugPart(parts[1]) {
		return "", false
	}
	return parts[0] + "/" + parts[1], true
}

// SanitizeName keeps [A-Za-z0-9._-] and collapses every other run into '-'.
func SanitizeName(raw string) string {
	var b strings.Builder
	lastDash := false
	for _, ch := range raw {
		if isSlugChar(ch) {
			b.WriteRune(ch)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func trimGitSuffix(s string) string {
	for strings.HasSuffix(s, ".git") {
		s = strings.TrimSuffix(s, ".git")
	}
	return s
}

func looksLikeURL(s string) bool {
	return strings.Contains(s, "://") ||
		strings.HasPrefix(s, "git@") ||
		(strings.Contains(s, "@") && strings.Contains(s, ":"))
}

func isPathLike(s string) bool {
	for _, prefix := range []string{"/", "./", "../", "~/"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	_, err := os.Stat(s)
	return err == nil
}

func isSlugPart(s string) bool {
	for _, ch := range s {
		if !isSlugChar(ch) {
			return false
		}
	}
	return true
}

func isSlugChar(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' ||
		ch == '-' || ch == '_' || ch == '.'
}
