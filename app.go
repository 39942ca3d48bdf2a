package clitree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// App builds a command tree by path. Paths name commands below the root, separated by spaces or
// dots: "remote add" and "remote.add" address the same command.
type App struct {
	root *Command
}

// New returns an App whose root command has the given name and description. An empty name uses
// the base name of the running program.
func New(name, description string) *App {
	if name == "" {
		name = filepath.Base(os.Args[0])
	}
	return &App{root: NewCommand(name, description, nil)}
}

// Root returns the root command.
func (a *App) Root() *Command {
	return a.root
}

// AddCommand adds a top-level command.
func (a *App) AddCommand(name, description string, exec func(ctx context.Context, s *State) error) error {
	return a.root.AddSubCommand(NewCommand(name, description, exec))
}

// AddSubCommand adds a command below the command at parentPath. An empty parentPath is invalid;
// use [App.AddCommand] for top-level commands.
func (a *App) AddSubCommand(parentPath, name, description string, exec func(ctx context.Context, s *State) error) error {
	if len(splitPath(parentPath)) == 0 {
		return NewError(ErrInvalidArgument, errors.New("parent path is empty"))
	}
	parent, err := a.Lookup(parentPath)
	if err != nil {
		return err
	}
	return parent.AddSubCommand(NewCommand(name, description, exec))
}

// AddArgument adds a positional argument to the command at path. An empty path targets the root.
func (a *App) AddArgument(path, name, description string, required bool) error {
	cmd, err := a.Lookup(path)
	if err != nil {
		return err
	}
	return cmd.AddArgument(NewArgument(name, description, required))
}

// AddFlag adds a flag to the command at path. An empty path targets the root. A zero short means
// the flag has no short form.
func (a *App) AddFlag(path, name string, short rune, description string) error {
	cmd, err := a.Lookup(path)
	if err != nil {
		return err
	}
	return cmd.AddFlag(NewFlag(name, short, description))
}

// Lookup returns the command at path. An empty path returns the root.
func (a *App) Lookup(path string) (*Command, error) {
	current := a.root
	for _, name := range splitPath(path) {
		sub := findCommand(name, current.subCommands)
		if sub == nil {
			return nil, NewError(ErrNotFound, fmt.Errorf("command path %q not found: %q has no subcommand %q", path, current.Path(), name))
		}
		current = sub
	}
	return current, nil
}

// Run parses args and runs the selected command, see [ParseAndRun].
func (a *App) Run(ctx context.Context, args []string, options *RunOptions) error {
	return ParseAndRun(ctx, a.root, args, options)
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == ' ' || r == '\t'
	})
}
