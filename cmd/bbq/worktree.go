package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/names"
	"github.com/nicobailon/bbq/internal/open"
	"github.com/nicobailon/bbq/internal/scripts"
)

const fallbackLocalBranch = "main"

var errNoOpenTargets = errors.New("no open targets available; install zed, cursor, or vscode")

func newWorktreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "worktree",
		Aliases: []string{"wt"},
		Short:   "Manage worktrees of a repo",
	}
	cmd.AddCommand(newWorktreeCreateCommand())
	cmd.AddCommand(newWorktreeListCommand())
	cmd.AddCommand(newWorktreeOpenCommand())
	cmd.AddCommand(newWorktreeRemoveCommand())
	return cmd
}

func newWorktreeCreateCommand() *cobra.Command {
	var branch string
	cmd := &cobra.Command{
		Use:   "create REPO",
		Short: "Create a worktree and run its post-create hook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			repo, err := env.git.ResolveRepo(args[0])
			if err != nil {
				return err
			}
			wt, err := createWorktree(env, repo, branch, cmd.Flags().Changed("branch"))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", wt.DisplayName())
			_, err = scripts.RunPostCreate(wt.Path, scripts.Inherit)
			return err
		},
	}
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to check out (created when missing)")
	return cmd
}

// createWorktree picks the name and branch the way the interactive wizard
// would without asking: an explicit branch wins, then the cities naming
// mode, then the repo's default branch.
func createWorktree(env *env, repo git.Repo, branch string, explicit bool) (git.Worktree, error) {
	if explicit {
		branch = strings.TrimSpace(branch)
		if branch == "" {
			return git.Worktree{}, errors.New("branch name required")
		}
		return env.git.CreateWorktree(repo, branch)
	}

	source, ok, err := env.git.DefaultBranch(repo)
	if err != nil || !ok || source == "" {
		source = fallbackLocalBranch
	}

	if names.ParseMode(env.cfg.DefaultWorktreeName) == names.ModeCities {
		existing, err := existingNames(env.git, repo)
		if err != nil {
			return git.Worktree{}, err
		}
		name := names.City(existing)
		branch := env.svc.GitHub.BranchName(name, env.cfg.GitHubPrefix)
		return env.git.CreateWorktreeFrom(repo, name, branch, source)
	}

	name := source
	if _, local, ok := strings.Cut(source, "/"); ok && strings.HasPrefix(source, "origin/") {
		name = local
	}
	return env.git.CreateWorktreeWithName(repo, name, source)
}

func existingNames(g *git.Git, repo git.Repo) (map[string]bool, error) {
	worktrees, err := g.ListWorktrees(repo)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(worktrees))
	for _, wt := range worktrees {
		existing[wt.DisplayName()] = true
	}
	return existing, nil
}

func newWorktreeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list REPO",
		Aliases: []string{"ls"},
		Short:   "List the worktrees of a repo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			repo, err := env.git.ResolveRepo(args[0])
			if err != nil {
				return err
			}
			worktrees, err := env.git.ListWorktrees(repo)
			if err != nil {
				return err
			}
			return printWorktrees(cmd.OutOrStdout(), worktrees)
		},
	}
}

func printWorktrees(w io.Writer, worktrees []git.Worktree) error {
	if len(worktrees) == 0 {
		_, err := fmt.Fprintln(w, "no worktrees")
		return err
	}
	for _, wt := range worktrees {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", wt.DisplayName(), wt.Path); err != nil {
			return err
		}
	}
	return nil
}

func findWorktree(g *git.Git, repo git.Repo, name string) (git.Worktree, error) {
	worktrees, err := g.ListWorktrees(repo)
	if err != nil {
		return git.Worktree{}, err
	}
	for _, wt := range worktrees {
		if wt.Matches(name) {
			return wt, nil
		}
	}
	return git.Worktree{}, fmt.Errorf("%w: %s", git.ErrWorktreeNotFound, name)
}

func newWorktreeOpenCommand() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "open REPO NAME",
		Short: "Open a worktree in an editor or a terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			repo, err := env.git.ResolveRepo(args[0])
			if err != nil {
				return err
			}
			wt, err := findWorktree(env.git, repo, args[1])
			if err != nil {
				return err
			}
			msg, err := openWorktree(env, wt, target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "zed, cursor, vscode, or terminal")
	return cmd
}

// openWorktree launches wt and returns the line to print. Without a target
// the configured editor is used, then the first detected one.
func openWorktree(env *env, wt git.Worktree, target string) (string, error) {
	name := wt.DisplayName()
	target = strings.TrimSpace(target)

	if strings.EqualFold(target, "terminal") {
		if err := env.launcher.OpenTerminal(wt.Path, env.cfg.Terminal); err != nil {
			return "", err
		}
		return fmt.Sprintf("opened %s in terminal", name), nil
	}

	if target != "" {
		t, ok := open.ParseTarget(target)
		if !ok {
			return "", fmt.Errorf("unknown target: %s", target)
		}
		if !env.launcher.Available(t.Command()) {
			return "", fmt.Errorf("%s launcher not available", t.Label())
		}
		if err := env.launcher.OpenTarget(t, wt.Path); err != nil {
			return "", err
		}
		return fmt.Sprintf("opened %s in %s", name, t.Label()), nil
	}

	if command := env.cfg.EditorCommand(); command != "" {
		if err := env.launcher.OpenEditor(command, wt.Path); err != nil {
			return "", err
		}
		return fmt.Sprintf("opened %s in editor", name), nil
	}

	detected := env.launcher.Detect()
	if len(detected) == 0 {
		return "", errNoOpenTargets
	}
	t := detected[0]
	if err := env.launcher.OpenTarget(t, wt.Path); err != nil {
		return "", err
	}
	return fmt.Sprintf("opened %s in %s", name, t.Label()), nil
}

func newWorktreeRemoveCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:     "rm REPO NAME",
		Aliases: []string{"remove"},
		Short:   "Remove a worktree",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			repo, err := env.git.ResolveRepo(args[0])
			if err != nil {
				return err
			}
			if err := env.git.RemoveWorktree(repo, args[1], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[1])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")
	return cmd
}
