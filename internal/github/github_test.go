package github

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCommander struct {
	login string
	calls int
}

func (f *fakeCommander) Run(name string, args ...string) ([]byte, error) {
	if name != "gh" {
		return nil, errors.New("unexpected " + name)
	}
	if strings.Join(args, " ") == "api user -q .login" {
		f.calls++
		if f.login == "" {
			return nil, errors.New("not logged in")
		}
		return []byte(f.login + "\n"), nil
	}
	return []byte("gh version 2.40.0\n"), nil
}

func (f *fakeCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	return f.Run(name, args...)
}

func (f *fakeCommander) Start(dir, name string, args ...string) error { return nil }

func TestUsernameIsCached(t *testing.T) {
	cmd := &fakeCommander{login: "octo"}
	c := NewClient(cmd)

	for i := 0; i < 3; i++ {
		user, ok := c.Username()
		assert.True(t, ok)
		assert.Equal(t, "octo", user)
	}
	assert.Equal(t, 1, cmd.calls)
}

func TestUsernameFailureIsCached(t *testing.T) {
	cmd := &fakeCommander{}
	c := NewClient(cmd)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "topic", c.BranchName("topic", true))
	}
	cmd.login = "octo"
	_, ok := c.Username()
	assert.False(t, ok)
	assert.Equal(t, 1, cmd.calls)
}

func TestBranchName(t *testing.T) {
	c := NewClient(&fakeCommander{login: "octo"})
	assert.Equal(t, "octo/tokyo", c.BranchName("tokyo", true))
	assert.Equal(t, "tokyo", c.BranchName("tokyo", false))

	bad := NewClient(&fakeCommander{login: "bad user"})
	assert.Equal(t, "tokyo", bad.BranchName("tokyo", true))

	none := NewClient(&fakeCommander{})
	assert.Equal(t, "tokyo", none.BranchName("tokyo", true))
}

func TestRepoName(t *testing.T) {
	cases := map[string]string{
		"git@github.com:owner/repo.git":      "owner/repo",
		"ssh://git@github.com/owner/repo":    "owner/repo",
		"https://github.com/owner/repo.git/": "owner/repo",
		"https://www.github.com/owner/repo":  "owner/repo",
		"git://github.com/owner/repo/tree/x": "owner/repo",
	}
	for in, want := range cases {
		got, ok := RepoName(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"https://gitlab.com/owner/repo", "https://github.com/owner", "/tmp/source"} {
		_, ok := RepoName(in)
		assert.False(t, ok, in)
	}
}
