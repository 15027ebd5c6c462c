package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nicobailon/bbq/internal/config"
	"github.com/nicobailon/bbq/internal/deps"
	"github.com/nicobailon/bbq/internal/git"
	"github.com/nicobailon/bbq/internal/github"
	"github.com/nicobailon/bbq/internal/open"
	"github.com/nicobailon/bbq/internal/paths"
	"github.com/nicobailon/bbq/internal/restore"
	"github.com/nicobailon/bbq/internal/shell"
	"github.com/nicobailon/bbq/internal/update"
	"github.com/nicobailon/bbq/internal/workspace"
)

var errMissingDeps = errors.New("missing required dependencies")

// env is everything a command needs, wired once per invocation.
type env struct {
	cfg      *config.Config
	layout   paths.Layout
	git      *git.Git
	svc      *workspace.Service
	prefs    *config.Store
	launcher *open.Launcher
	restore  *restore.Store
}

func ensureDeps() error {
	missing := deps.Check()
	if len(missing) == 0 {
		return nil
	}
	for _, dep := range missing {
		fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, deps.InstallHint(dep))
	}
	return errMissingDeps
}

func loadEnv() (*env, error) {
	if err := ensureDeps(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	layout, err := paths.Resolve(cfg)
	if err != nil {
		return nil, err
	}
	if err := layout.EnsureDirs(); err != nil {
		return nil, err
	}

	cmd := &shell.ExecCommander{}
	g := git.New(layout)
	g.Cmd = cmd
	svc := workspace.NewService(g, github.NewClient(cmd), &update.Brew{Cmd: cmd})
	return &env{
		cfg:      cfg,
		layout:   layout,
		git:      g,
		svc:      svc,
		prefs:    &config.Store{Dir: layout.ConfigDir},
		launcher: open.NewLauncher(cmd),
		restore:  restore.NewStore(layout.ConfigDir),
	}, nil
}
