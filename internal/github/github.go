// Package github holds the small amount of GitHub awareness bbq has: the
// signed-in gh user and owner/repo names of github.com remotes.
package github

import (
	"strings"
	"sync"

	"github.com/nicobailon/bbq/internal/shell"
	"github.com/nicobailon/bbq/internal/validate"
)

// Client caches the gh login for one session, including a failed lookup.
type Client struct {
	Cmd shell.Commander

	mu       sync.Mutex
	looked   bool
	username string
}

func NewClient(cmd shell.Commander) *Client {
	return &Client{Cmd: cmd}
}

func (c *Client) Available() bool {
	_, err := c.Cmd.Run("gh", "--version")
	return err == nil
}

func (c *Client) Username() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.looked {
		return c.username, c.username != ""
	}
	c.looked = true
	out, err := c.Cmd.Run("gh", "api", "user", "-q", ".login")
	if err != nil {
		return "", false
	}
	line, _, _ := strings.Cut(string(out), "\n")
	c.username = strings.TrimSpace(line)
	return c.username, c.username != ""
}

// BranchName returns USER/NAME when prefixing is enabled and the gh user is
// known, falling back to name.
func (c *Client) BranchName(name string, prefix bool) string {
	if !prefix {
		return name
	}
	user, ok := c.Username()
	if !ok {
		return name
	}
	candidate := user + "/" + name
	if validate.BranchName(candidate) != nil {
		return name
	}
	return candidate
}

var repoPrefixes = []string{
	"git@github.com:",
	"ssh://git@github.com/",
	"https://github.com/",
	"http://github.com/",
	"https://www.github.com/",
	"http://www.github.com/",
	"git://github.com/",
}

// RepoName extracts owner/repo from a github.com remote url.
func RepoName(url string) (string, bool) {
	s := strings.TrimRight(strings.TrimSpace(url), "/")
	s = strings.TrimSuffix(s, ".git")
	for _, prefix := range repoPrefixes {
		rest, ok := strings.CutPrefix(s, prefix)
		if !ok {
			continue
		}
		parts := strings.Split(rest, "/")
		if len(parts) < 2 {
			return "", false
		}
		owner, repo := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if owner == "" || repo == "" {
			return "", false
		}
		return owner + "/" + repo, true
	}
	return "", false
}
