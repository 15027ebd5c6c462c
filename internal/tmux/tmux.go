package tmux

import (
	"os"

	"github.com/nicobailon/bbq/internal/shell"
)

type Tmux struct {
	Cmd shell.Commander
}

// Inside reports whether bbq runs inside a tmux client.
func (t *Tmux) Inside() bool {
	return os.Getenv("TMUX") != ""
}

// NewWindow opens a window in the current session, starting in path.
func (t *Tmux) NewWindow(path, name string) error {
	args := []string{"new-window", "-c", path}
	if name != "" {
		args = append(args, "-n", name)
	}
	_, err := t.Cmd.Run("tmux", args...)
	return err
}
