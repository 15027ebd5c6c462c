package git

import (
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Read-only lookups on bare clones go through go-git to avoid a process per
// query. Repositories go-git cannot open fall back to the git binary.

func openBare(repoPath string) (*gogit.Repository, bool) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return nil, false
	}
	return repo, true
}

func (g *Git) refExists(repoPath, ref string) bool {
	if repo, ok := openBare(repoPath); ok {
		_, err := repo.Reference(plumbing.ReferenceName(ref), false)
		return err == nil
	}
	_, err := g.runIn(repoPath, "show-ref", "--verify", "--quiet", ref)
	return err == nil
}

func (g *Git) remotes(repoPath string) ([]string, error) {
	if repo, ok := openBare(repoPath); ok {
		list, err := repo.Remotes()
		if err == nil {
			names := make([]string, 0, len(list))
			for _, remote := range list {
				names = append(names, remote.Config().Name)
			}
			sort.Strings(names)
			return names, nil
		}
	}

	out, err := g.runIn(repoPath, "remote")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// RemoteURL returns the first configured url of remote.
func (g *Git) RemoteURL(repo Repo, remote string) (string, bool) {
	if r, ok := openBare(repo.Path); ok {
		if rem, err := r.Remote(remote); err == nil {
			if urls := rem.Config().URLs; len(urls) > 0 && strings.TrimSpace(urls[0]) != "" {
				return strings.TrimSpace(urls[0]), true
			}
			return "", false
		}
	}
	out, err := g.runIn(repo.Path, "remote", "get-url", remote)
	if err != nil {
		return "", false
	}
	url := firstLine(out)
	return url, url != ""
}
