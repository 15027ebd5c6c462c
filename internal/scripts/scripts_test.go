package scripts

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func writeHook(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, PostCreate)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write hook: %v", err)
	}
	return path
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunPostCreateWithoutHook(t *testing.T) {
	path, err := RunPostCreate(t.TempDir(), Capture)
	if err != nil || path != "" {
		t.Fatalf("expected no-op, got %q, %v", path, err)
	}
}

func TestRunPostCreateRunsInWorktree(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	hook := writeHook(t, dir, "#!/bin/sh\necho ok > created.txt\n")

	path, err := RunPostCreate(dir, Capture)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if path != hook {
		t.Fatalf("path mismatch: %s", path)
	}
	if _, err := os.Stat(filepath.Join(dir, "created.txt")); err != nil {
		t.Fatalf("hook did not run in worktree: %v", err)
	}
}

func TestRunPostCreateMissingShebang(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "echo nope\n")

	_, err := RunPostCreate(dir, Capture)
	if !errors.Is(err, ErrMissingShebang) {
		t.Fatalf("expected missing shebang, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "script missing shebang: ") {
		t.Fatalf("message mismatch: %v", err)
	}
}

func TestRunPostCreateCapturesStderr(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	writeHook(t, dir, "#!/bin/sh\necho broken >&2\nexit 4\n")

	_, err := RunPostCreate(dir, Capture)
	var scriptErr *Error
	if !errors.As(err, &scriptErr) {
		t.Fatalf("expected script error, got %v", err)
	}
	if scriptErr.Message != "exit status 4\nstderr: broken" {
		t.Fatalf("message mismatch: %q", scriptErr.Message)
	}
}
