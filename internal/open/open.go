// Package open launches editors and terminals on a worktree.
package open

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/nicobailon/bbq/internal/shell"
	"github.com/nicobailon/bbq/internal/tmux"
)

var (
	ErrNoTerminal   = errors.New("no terminal emulator found; configure terminal in ~/.bbq/config.toml")
	ErrEmptyCommand = errors.New("command is empty")
)

type Target int

const (
	Zed Target = iota
	Cursor
	VSCode
)

var allTargets = []Target{Zed, Cursor, VSCode}

func (t Target) Label() string {
	switch t {
	case Zed:
		return "Zed"
	case Cursor:
		return "Cursor"
	default:
		return "VSCode"
	}
}

func (t Target) Command() string {
	switch t {
	case Zed:
		return "zed"
	case Cursor:
		return "cursor"
	default:
		return "code"
	}
}

// ParseTarget accepts loose spellings such as "VS Code" or "code".
func ParseTarget(value string) (Target, bool) {
	switch normalize(value) {
	case "zed":
		return Zed, true
	case "cursor":
		return Cursor, true
	case "vscode", "code", "visualstudiocode":
		return VSCode, true
	}
	return 0, false
}

func normalize(value string) string {
	var b strings.Builder
	for _, ch := range value {
		if ch < unicode.MaxASCII && (unicode.IsLetter(ch) || unicode.IsDigit(ch)) {
			b.WriteRune(unicode.ToLower(ch))
		}
	}
	return b.String()
}

type terminal struct {
	command string
	args    []string
}

var terminals = []terminal{
	{"wezterm", []string{"start", "--cwd"}},
	{"alacritty", []string{"--working-directory"}},
	{"kitty", []string{"--directory"}},
	{"gnome-terminal", []string{"--working-directory"}},
	{"konsole", []string{"--workdir"}},
	{"xfce4-terminal", []string{"--working-directory"}},
	{"x-terminal-emulator", []string{"--working-directory"}},
}

// TerminalApp is a terminal the setup wizard can offer. Value is what gets
// saved as the terminal setting.
type TerminalApp struct {
	Label string
	Value string
	paths []string
}

var macTerminals = []TerminalApp{
	{"Terminal.app", "Terminal", []string{"/System/Applications/Utilities/Terminal.app", "/Applications/Utilities/Terminal.app"}},
	{"iTerm", "iTerm", []string{"/Applications/iTerm.app", "/Applications/iTerm2.app"}},
	{"Warp", "Warp", []string{"/Applications/Warp.app"}},
	{"Ghostty", "Ghostty", []string{"/Applications/Ghostty.app"}},
	{"WezTerm", "WezTerm", []string{"/Applications/WezTerm.app"}},
	{"Alacritty", "Alacritty", []string{"/Applications/Alacritty.app"}},
	{"Hyper", "Hyper", []string{"/Applications/Hyper.app"}},
	{"Kitty", "Kitty", []string{"/Applications/kitty.app", "/Applications/Kitty.app"}},
}

type Launcher struct {
	Cmd  shell.Commander
	Tmux *tmux.Tmux
}

func NewLauncher(cmd shell.Commander) *Launcher {
	return &Launcher{Cmd: cmd, Tmux: &tmux.Tmux{Cmd: cmd}}
}

// Available checks program through a login shell so PATH additions from
// the user's profile count.
func (l *Launcher) Available(program string) bool {
	_, err := l.Cmd.Run("sh", "-lc", "command -v "+shell.Escape(program))
	return err == nil
}

// Detect lists the editor targets installed on this machine.
func (l *Launcher) Detect() []Target {
	var found []Target
	for _, t := range allTargets {
		if l.Available(t.Command()) {
			found = append(found, t)
		}
	}
	return found
}

// DetectTerminals lists installed terminals. On macOS these are app bundles
// and Terminal.app is always offered; elsewhere they are emulators on PATH.
func (l *Launcher) DetectTerminals() []TerminalApp {
	var found []TerminalApp
	if runtime.GOOS == "darwin" {
		for _, app := range macTerminals {
			if anyExists(app.paths) {
				found = append(found, app)
			}
		}
		if len(found) == 0 {
			found = append(found, macTerminals[0])
		}
		return found
	}
	for _, term := range terminals {
		if l.Available(term.command) {
			value := strings.Join(append([]string{term.command}, term.args...), " ")
			found = append(found, TerminalApp{Label: term.command, Value: value})
		}
	}
	return found
}

func anyExists(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

func (l *Launcher) OpenTarget(t Target, path string) error {
	return l.Cmd.Start("", t.Command(), path)
}

// OpenEditor runs a configured editor command with path appended. Commands
// with arguments run through sh.
func (l *Launcher) OpenEditor(command, path string) error {
	command = strings.TrimSpace(command)
	if strings.IndexFunc(command, unicode.IsSpace) >= 0 && l.openApp(command, path) {
		return nil
	}
	return l.runWithPath(command, path)
}

func (l *Launcher) runWithPath(command, path string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return ErrEmptyCommand
	}
	if strings.IndexFunc(command, unicode.IsSpace) < 0 {
		return l.Cmd.Start("", command, path)
	}
	return l.Cmd.Start("", "sh", "-lc", command+" "+shell.Escape(path))
}

// OpenTerminal opens a terminal in path: the configured command, a new tmux
// window when running inside tmux, or the first installed emulator.
func (l *Launcher) OpenTerminal(path, command string) error {
	if command = strings.TrimSpace(command); command != "" {
		if l.openApp(command, path) {
			return nil
		}
		return l.runWithPath(command, path)
	}

	if l.Tmux != nil && l.Tmux.Inside() {
		return l.Tmux.NewWindow(path, filepath.Base(path))
	}
	if runtime.GOOS == "darwin" {
		return l.openMacTerminal(path)
	}

	for _, term := range terminals {
		if l.Available(term.command) {
			return l.Cmd.Start("", term.command, append(term.args, path)...)
		}
	}
	if l.Available("xterm") {
		sh := os.Getenv("SHELL")
		if sh == "" {
			sh = "sh"
		}
		line := fmt.Sprintf("cd %s && exec %s", shell.Escape(path), sh)
		return l.Cmd.Start("", "xterm", "-e", "sh", "-lc", line)
	}
	return ErrNoTerminal
}

// openApp uses "open -a" on macOS so configured values may be app names.
func (l *Launcher) openApp(app, path string) bool {
	if runtime.GOOS != "darwin" {
		return false
	}
	_, err := l.Cmd.Run("open", "-a", app, path)
	return err == nil
}

func (l *Launcher) openMacTerminal(path string) error {
	line := "cd " + shell.Escape(path)
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(line)
	script := "tell application \"Terminal\"\n  activate\n  set newWindow to do script \"\"\n" +
		"  do script \"" + escaped + "\" in newWindow\nend tell"
	if _, err := l.Cmd.Run("osascript", "-e", script); err != nil {
		return fmt.Errorf("osascript failed: %s", shell.Stderr(err))
	}
	return nil
}
