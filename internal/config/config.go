package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	dirName      = ".bbq"
	fileName     = "config.toml"
	defaultTheme = "orange"

	KeyTheme               = "theme"
	KeyDefaultOpen         = "default_open"
	KeyEditor              = "editor"
	KeyTerminal            = "terminal"
	KeyGitHubPrefix        = "github_prefix"
	KeyGitHubUserPrefix    = "github_user_prefix"
	KeyDefaultWorktreeName = "default_worktree_name"
	KeyKnownLatestVersion  = "known_latest_version"
	KeyCheckUpdates        = "check_updates"
	KeyForceUpgradePrompt  = "force_upgrade_prompt"
	KeyRootDir             = "root_dir"
)

var ErrHomeNotFound = errors.New("home directory not found")

// Config holds the user settings from ~/.bbq/config.toml.
type Config struct {
	Theme              string
	DefaultOpen        string
	Editor             string
	Terminal           string
	KnownLatestVersion string
	RootDir            string

	// DefaultWorktreeName is the naming mode ("cities" or empty).
	// DefaultWorktreeNameSet is true whenever the key is present, even when
	// empty, so the setup wizard does not ask again.
	DefaultWorktreeName    string
	DefaultWorktreeNameSet bool

	GitHubPrefix       bool
	CheckUpdates       bool
	ForceUpgradePrompt bool
}

type fileConfig struct {
	Theme               string `mapstructure:"theme"`
	DefaultOpen         string `mapstructure:"default_open"`
	Editor              string `mapstructure:"editor"`
	Terminal            string `mapstructure:"terminal"`
	DefaultWorktreeName string `mapstructure:"default_worktree_name"`
	KnownLatestVersion  string `mapstructure:"known_latest_version"`
	RootDir             string `mapstructure:"root_dir"`
}

func defaultConfig() *Config {
	return &Config{
		Theme:        defaultTheme,
		GitHubPrefix: true,
		CheckUpdates: true,
	}
}

// Dir returns the bbq config root, ~/.bbq.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomeNotFound
	}
	return filepath.Join(home, dirName), nil
}

func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.toml from dir, falling back to config.yaml.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	v.SetConfigType("toml")

	v.SetDefault(KeyTheme, defaultTheme)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return defaultConfig(), nil
		}
		// fallback to YAML if the file is not TOML
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	cfg.Theme = strings.TrimSpace(raw.Theme)
	cfg.DefaultOpen = strings.TrimSpace(raw.DefaultOpen)
	cfg.Editor = strings.TrimSpace(raw.Editor)
	cfg.Terminal = strings.TrimSpace(raw.Terminal)
	cfg.KnownLatestVersion = strings.TrimSpace(raw.KnownLatestVersion)
	cfg.RootDir = strings.TrimSpace(raw.RootDir)
	if cfg.Editor != "" && cfg.DefaultOpen == "" {
		cfg.DefaultOpen = cfg.Editor
	}
	if v.InConfig(KeyDefaultWorktreeName) {
		cfg.DefaultWorktreeNameSet = true
		cfg.DefaultWorktreeName = strings.ToLower(strings.TrimSpace(raw.DefaultWorktreeName))
	}

	for _, key := range []string{KeyGitHubPrefix, KeyGitHubUserPrefix} {
		if enabled, ok := parseBool(v.GetString(key)); ok && v.InConfig(key) {
			cfg.GitHubPrefix = enabled
		}
	}
	if enabled, ok := parseBool(v.GetString(KeyCheckUpdates)); ok {
		cfg.CheckUpdates = enabled
	}
	if enabled, ok := parseBool(v.GetString(KeyForceUpgradePrompt)); ok {
		cfg.ForceUpgradePrompt = enabled
	}
	return cfg, nil
}

// EditorCommand returns the configured editor, falling back to default_open.
func (c *Config) EditorCommand() string {
	if c.Editor != "" {
		return c.Editor
	}
	return c.DefaultOpen
}

func (c *Config) EditorConfigured() bool   { return c.Editor != "" }
func (c *Config) TerminalConfigured() bool { return c.Terminal != "" }

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(value), `"'`)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}
