package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadMissingConfigUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "orange" {
		t.Fatalf("theme mismatch: %s", cfg.Theme)
	}
	if !cfg.CheckUpdates || cfg.ForceUpgradePrompt || !cfg.GitHubPrefix {
		t.Fatalf("bool defaults mismatch: %+v", cfg)
	}
	if cfg.DefaultWorktreeNameSet {
		t.Fatalf("default_worktree_name should not be set")
	}
}

func TestLoadTOMLConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `theme = "violet"
editor = "code --wait"
terminal = "kitty"
default_worktree_name = ""
check_updates = "no"
force_upgrade_prompt = "on"
github_user_prefix = false
known_latest_version = "1.2.3"
root_dir = "~/src/bbq"
`)

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "violet" {
		t.Fatalf("theme mismatch: %s", cfg.Theme)
	}
	if cfg.EditorCommand() != "code --wait" || cfg.DefaultOpen != "code --wait" {
		t.Fatalf("editor mismatch: %q / %q", cfg.EditorCommand(), cfg.DefaultOpen)
	}
	if !cfg.TerminalConfigured() || cfg.Terminal != "kitty" {
		t.Fatalf("terminal mismatch: %s", cfg.Terminal)
	}
	if !cfg.DefaultWorktreeNameSet || cfg.DefaultWorktreeName != "" {
		t.Fatalf("default_worktree_name mismatch: %+v", cfg)
	}
	if cfg.CheckUpdates {
		t.Fatalf("check_updates should be disabled")
	}
	if !cfg.ForceUpgradePrompt {
		t.Fatalf("force_upgrade_prompt should be enabled")
	}
	if cfg.GitHubPrefix {
		t.Fatalf("github prefix should be disabled")
	}
	if cfg.KnownLatestVersion != "1.2.3" {
		t.Fatalf("known_latest_version mismatch: %s", cfg.KnownLatestVersion)
	}
	if cfg.RootDir != "~/src/bbq" {
		t.Fatalf("root_dir mismatch: %s", cfg.RootDir)
	}
}

func TestEditorFallsBackToDefaultOpen(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `default_open = "zed"`)
	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EditorConfigured() {
		t.Fatalf("editor should not count as configured")
	}
	if cfg.EditorCommand() != "zed" {
		t.Fatalf("editor command mismatch: %s", cfg.EditorCommand())
	}
}

func TestLoadYAMLFallback(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "theme: pink\ndefault_worktree_name: Cities\n")
	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "pink" {
		t.Fatalf("theme mismatch: %s", cfg.Theme)
	}
	if cfg.DefaultWorktreeName != "cities" {
		t.Fatalf("naming mode mismatch: %s", cfg.DefaultWorktreeName)
	}
}

func TestStoreSetKeepsOtherKeys(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `editor = "cursor"`)

	store := &Store{Dir: dir}
	if err := store.SaveTheme("gold"); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	if err := store.SaveCheckUpdates(false); err != nil {
		t.Fatalf("save check_updates: %v", err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "gold" {
		t.Fatalf("theme mismatch: %s", cfg.Theme)
	}
	if cfg.Editor != "cursor" {
		t.Fatalf("editor lost: %s", cfg.Editor)
	}
	if cfg.CheckUpdates {
		t.Fatalf("check_updates should be disabled")
	}
}

func TestStoreCreatesConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".bbq")
	store := &Store{Dir: dir}
	if err := store.SaveDefaultWorktreeName(""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Fatalf("config.toml not written: %v", err)
	}
	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.DefaultWorktreeNameSet {
		t.Fatalf("default_worktree_name should be set")
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "YES", "on", "1", `"true"`} {
		if v, ok := parseBool(in); !ok || !v {
			t.Fatalf("parseBool(%q) = %v, %v", in, v, ok)
		}
	}
	for _, in := range []string{"false", "no", "Off", "0"} {
		if v, ok := parseBool(in); !ok || v {
			t.Fatalf("parseBool(%q) = %v, %v", in, v, ok)
		}
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatalf("parseBool should reject maybe")
	}
}
