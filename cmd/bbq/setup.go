package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nicobailon/bbq/internal/config"
	"github.com/nicobailon/bbq/internal/names"
)

var errNotInteractive = errors.New("setup needs an interactive terminal; pass --worktree-names, --editor or --terminal instead")

// choices is the answer set of the setup wizard. Empty editor and terminal
// values mean "configure later" and are not written.
type choices struct {
	setNames      bool
	worktreeNames string
	editor        string
	terminal      string
}

func newSetupCommand() *cobra.Command {
	var c choices
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Pick default worktree names, editor, and terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("worktree-names") && !flags.Changed("editor") && !flags.Changed("terminal") {
				if !interactive() {
					return errNotInteractive
				}
				if err := setupForm(env, &c).Run(); err != nil {
					return err
				}
				c.setNames = true
			} else if flags.Changed("worktree-names") {
				c.worktreeNames = string(names.ParseMode(c.worktreeNames))
				c.setNames = true
			}
			return saveChoices(cmd.OutOrStdout(), env.prefs, c)
		},
	}
	cmd.Flags().StringVar(&c.worktreeNames, "worktree-names", "", `Default worktree names: "cities" or "none"`)
	cmd.Flags().StringVar(&c.editor, "editor", "", "Editor command used to open worktrees")
	cmd.Flags().StringVar(&c.terminal, "terminal", "", "Terminal used to open worktrees")
	return cmd
}

func setupForm(env *env, c *choices) *huh.Form {
	editors := []huh.Option[string]{}
	for _, t := range env.launcher.Detect() {
		editors = append(editors, huh.NewOption(t.Label(), t.Command()))
	}
	editors = append(editors, huh.NewOption("Configure later", ""))

	terminals := []huh.Option[string]{}
	for _, app := range env.launcher.DetectTerminals() {
		terminals = append(terminals, huh.NewOption(app.Label, app.Value))
	}
	terminals = append(terminals, huh.NewOption("Configure later", ""))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default worktree names").
				Options(
					huh.NewOption("cities", string(names.ModeCities)),
					huh.NewOption("no defaults", string(names.ModeNone)),
				).
				Value(&c.worktreeNames),
			huh.NewSelect[string]().
				Title("Open worktrees with").
				Options(editors...).
				Value(&c.editor),
			huh.NewSelect[string]().
				Title("Terminal").
				Options(terminals...).
				Value(&c.terminal),
		),
	).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(false)
}

func saveChoices(w io.Writer, store *config.Store, c choices) error {
	if c.setNames {
		if err := store.SaveDefaultWorktreeName(c.worktreeNames); err != nil {
			return fmt.Errorf("save default worktree names: %w", err)
		}
	}
	if c.editor != "" {
		if err := store.SaveEditor(c.editor); err != nil {
			return fmt.Errorf("save editor: %w", err)
		}
	}
	if c.terminal != "" {
		if err := store.SaveTerminal(c.terminal); err != nil {
			return fmt.Errorf("save terminal: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "saved %s\n", store.Path())
	return err
}
