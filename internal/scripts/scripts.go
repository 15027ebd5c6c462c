// Package scripts runs the per-worktree hooks checked into a repository.
package scripts

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// PostCreate is the hook location relative to the worktree root.
const PostCreate = ".bbq/worktree/post-create"

type Output int

const (
	// Inherit connects the hook to the caller's terminal.
	Inherit Output = iota
	// Capture runs with no stdin and folds stderr into the failure message.
	Capture
)

var ErrMissingShebang = errors.New("script missing shebang")

type Error struct {
	Script  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("script failed: %s\n%s", e.Script, e.Message)
}

// FindPostCreate returns the hook path when it exists as a regular file.
func FindPostCreate(worktreePath string) (string, bool) {
	path := filepath.Join(worktreePath, PostCreate)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// RunPostCreate runs the hook if present and returns its path.
func RunPostCreate(worktreePath string, output Output) (string, error) {
	path, ok := FindPostCreate(worktreePath)
	if !ok {
		return "", nil
	}
	return path, Run(worktreePath, path, output)
}

// Run executes script through the interpreter named in its shebang line.
func Run(dir, script string, output Output) error {
	argv, err := readShebang(script)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], append(argv[1:], script)...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	switch output {
	case Capture:
		cmd.Stderr = &stderr
	default:
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return &Error{Script: script, Message: err.Error()}
		}
		msg := exitMessage(exitErr)
		if text := strings.TrimSpace(stderr.String()); text != "" {
			msg += "\nstderr: " + text
		}
		return &Error{Script: script, Message: msg}
	}
	return nil
}

func readShebang(script string) ([]string, error) {
	f, err := os.Open(script)
	if err != nil {
		return nil, &Error{Script: script, Message: err.Error()}
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingShebang, script)
	}
	line = strings.TrimRight(line, "\r\n")
	rest, ok := strings.CutPrefix(line, "#!")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingShebang, script)
	}
	argv := strings.Fields(rest)
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingShebang, script)
	}
	return argv, nil
}

func exitMessage(err *exec.ExitError) string {
	if code := err.ExitCode(); code >= 0 {
		return fmt.Sprintf("exit status %d", code)
	}
	return "terminated by signal"
}
