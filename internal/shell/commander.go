package shell

import (
	"errors"
	"os/exec"
	"strings"
)

// Commander runs external programs. Run and RunDir return stdout; a failed
// command yields an *exec.ExitError whose Stderr can be read with Stderr.
type Commander interface {
	Run(name string, args ...string) ([]byte, error)
	RunDir(dir, name string, args ...string) ([]byte, error)
	Start(dir, name string, args ...string) error
}

type ExecCommander struct{}

func (e *ExecCommander) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}

func (e *ExecCommander) RunDir(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.Output()
}

// Start spawns a detached process with null stdio and reaps it in the
// background.
func (e *ExecCommander) Start(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Stderr extracts the trimmed stderr of a failed command, if any.
func Stderr(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}

// NotFound reports whether err means the program is not installed.
func NotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// Escape quotes value for sh unless it only holds safe characters.
func Escape(value string) string {
	if value == "" {
		return "''"
	}
	safe := true
	for _, ch := range value {
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || strings.ContainsRune("-_./:@=", ch)) {
			safe = false
			break
		}
	}
	if safe {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
