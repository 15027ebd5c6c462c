package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRepoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage bare repo clones",
	}
	cmd.AddCommand(newRepoCloneCommand())
	cmd.AddCommand(newRepoListCommand())
	cmd.AddCommand(newRepoRemoveCommand())
	return cmd
}

func newRepoCloneCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "clone URL [NAME]",
		Aliases: []string{"checkout"},
		Short:   "Clone a repo as a bare repository",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			repo, err := env.git.CheckoutRepo(args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked out %s\n", repo.Name)
			return nil
		},
	}
}

func newRepoListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cloned repos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			repos, err := env.git.ListRepos()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(repos) == 0 {
				fmt.Fprintln(out, "no repos")
				return nil
			}
			for _, repo := range repos {
				fmt.Fprintln(out, repo.Name)
			}
			return nil
		},
	}
}

func newRepoRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"remove"},
		Short:   "Delete a repo that has no worktrees",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			if err := env.git.RemoveRepo(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}
