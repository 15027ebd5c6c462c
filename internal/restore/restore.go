// Package restore remembers the tree layout between interactive sessions.
package restore

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

const fileName = "restore.toml"

// State is the expanded repos and the last selection. A selected worktree
// takes precedence over a selected repo.
type State struct {
	Expanded             []string `toml:"expanded,omitempty"`
	SelectedRepo         string   `toml:"selected_repo,omitempty"`
	SelectedWorktreeRepo string   `toml:"selected_worktree_repo,omitempty"`
	SelectedWorktreeName string   `toml:"selected_worktree_name,omitempty"`
}

type Store struct {
	path string
}

func NewStore(configDir string) *Store {
	return &Store{path: filepath.Join(configDir, fileName)}
}

// Load returns an empty state when the file is missing or unreadable.
func (s *Store) Load() State {
	var state State
	data, err := os.ReadFile(s.path)
	if err != nil {
		return state
	}
	if err := toml.Unmarshal(data, &state); err != nil {
		return State{}
	}
	return state
}

func (s *Store) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	expanded := append([]string(nil), state.Expanded...)
	sort.Strings(expanded)
	state.Expanded = expanded

	data, err := toml.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
