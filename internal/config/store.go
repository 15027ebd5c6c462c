package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Store persists single settings back into the config file.
type Store struct {
	Dir string
}

func NewStore() (*Store, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

// Set rewrites key in the existing config file, creating config.toml when
// there is none. Only keys present in the file are written back.
func (s *Store) Set(key, value string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}

	path, kind := s.existingFile()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(kind)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	v.Set(key, value)
	return v.WriteConfigAs(path)
}

// Path is the file Set writes to.
func (s *Store) Path() string {
	path, _ := s.existingFile()
	return path
}

func (s *Store) existingFile() (string, string) {
	for _, kind := range []string{"toml", "yaml"} {
		path := filepath.Join(s.Dir, "config."+kind)
		if _, err := os.Stat(path); err == nil {
			return path, kind
		}
	}
	return filepath.Join(s.Dir, fileName), "toml"
}

func (s *Store) SaveTheme(name string) error {
	return s.Set(KeyTheme, name)
}

func (s *Store) SaveEditor(command string) error {
	return s.Set(KeyEditor, command)
}

func (s *Store) SaveTerminal(command string) error {
	return s.Set(KeyTerminal, command)
}

func (s *Store) SaveDefaultWorktreeName(mode string) error {
	return s.Set(KeyDefaultWorktreeName, mode)
}

func (s *Store) SaveKnownLatestVersion(version string) error {
	return s.Set(KeyKnownLatestVersion, version)
}

func (s *Store) SaveCheckUpdates(enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return s.Set(KeyCheckUpdates, value)
}
