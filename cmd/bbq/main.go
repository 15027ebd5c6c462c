package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/nicobailon/bbq/internal/tui"
	"github.com/nicobailon/bbq/pkg/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := newRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func printError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	label := out.String("error:").Foreground(out.Color("1")).Bold()
	fmt.Fprintf(w, "%s %v\n", label, err)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bbq",
		Short:         "Bare repos and their worktrees, one keypress away",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return cmd.Help()
			}
			return runTUI()
		},
	}
	root.SetVersionTemplate("bbq {{.Version}}\n")
	root.Flags().BoolP("version", "v", false, "Show version")

	root.AddCommand(newRepoCommand())
	root.AddCommand(newWorktreeCommand())
	root.AddCommand(newSetupCommand())
	return root
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func runTUI() error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	app := tui.New(tui.Deps{
		Svc:      env.svc,
		Cfg:      env.cfg,
		Prefs:    env.prefs,
		Launcher: env.launcher,
		Restore:  env.restore,
		Version:  version.Version,
	})
	return app.Run()
}
