package clitree

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/clitree/pkg/suggest"
)

// Command represents a CLI command or subcommand within the application's command hierarchy.
//
// A command without an Exec function is a group: it exists only to hold subcommands, and selecting
// it shows its help.
type Command struct {
	// Name is always a single word representing the command's name. It is used to identify the
	// command in the command hierarchy and in help text.
	Name string

	// Usage optionally replaces the generated usage line in help text.
	//
	// Example: "todo add <text> [OPTIONS]"
	Usage string

	// ShortHelp is a brief description of the command's purpose. It is displayed in the help text
	// of the command and next to its name in its parent's command list.
	ShortHelp string

	// UsageFunc is an optional function that can be used to generate a custom help text for the
	// command. It receives the current command and should return the full help text.
	UsageFunc func(*Command) string

	// Exec defines the command's execution logic. It receives a [State] exposing the bound
	// arguments and flags of this command, and returns an error if execution fails.
	Exec func(ctx context.Context, s *State) error

	parent      *Command
	subCommands []*Command
	arguments   []*Argument
	flags       []*Flag

	// selected is the outcome of the last Parse call made on this command.
	selected *selection
}

// NewCommand returns a command with the given name, short help and exec function. A nil exec makes
// the command a group.
func NewCommand(name, shortHelp string, exec func(ctx context.Context, s *State) error) *Command {
	return &Command{
		Name:      name,
		ShortHelp: shortHelp,
		Exec:      exec,
	}
}

// AddSubCommand appends sub to the command's subcommands and makes c its parent. It fails if sub
// has an invalid name, already belongs to another command, or shares its name with an existing
// subcommand of c.
//
// A subcommand named "help" is accepted but never selected by Parse, since the token always
// requests help for its parent.
func (c *Command) AddSubCommand(sub *Command) error {
	if sub == nil {
		return NewError(ErrInvalidArgument, errors.New("subcommand is nil"))
	}
	if err := validateName("command", sub.Name); err != nil {
		return err
	}
	if sub.parent != nil {
		return NewError(ErrInvalidArgument, fmt.Errorf("command %q already belongs to %q", sub.Name, sub.parent.Path()))
	}
	for p := c; p != nil; p = p.parent {
		if p == sub {
			return NewError(ErrInvalidArgument, fmt.Errorf("command %q cannot be its own descendant", sub.Name))
		}
	}
	if findCommand(sub.Name, c.subCommands) != nil {
		return NewError(ErrAlreadyExists, fmt.Errorf("command %q already has a subcommand named %q", c.Path(), sub.Name))
	}
	sub.parent = c
	c.subCommands = append(c.subCommands, sub)
	return nil
}

// AddArgument appends a positional argument. Arguments bind in the order they are added.
func (c *Command) AddArgument(arg *Argument) error {
	if arg == nil {
		return NewError(ErrInvalidArgument, errors.New("argument is nil"))
	}
	if err := validateName("argument", arg.name); err != nil {
		return err
	}
	c.arguments = append(c.arguments, arg)
	return nil
}

// AddFlag appends a flag. When two flags share a name or short form, the first one added wins. The
// long name "help" and the short form 'h' are reserved.
func (c *Command) AddFlag(f *Flag) error {
	if f == nil {
		return NewError(ErrInvalidArgument, errors.New("flag is nil"))
	}
	if err := validateName("flag", f.name); err != nil {
		return err
	}
	if err := validateShort(f); err != nil {
		return err
	}
	if err := validateReachable(f); err != nil {
		return err
	}
	c.flags = append(c.flags, f)
	return nil
}

// Parent returns the command c was added to, or nil for a root command.
func (c *Command) Parent() *Command { return c.parent }

// SubCommands returns a copy of the subcommands in the order they were added.
func (c *Command) SubCommands() []*Command { return slices.Clone(c.subCommands) }

// Arguments returns a copy of the positional arguments in declaration order.
func (c *Command) Arguments() []*Argument { return slices.Clone(c.arguments) }

// Flags returns a copy of the flags in the order they were added.
func (c *Command) Flags() []*Flag { return slices.Clone(c.flags) }

// Path returns the space-separated names from the root down to c, e.g. "todo remote add".
func (c *Command) Path() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.Path() + " " + c.Name
}

// Argument returns the argument with the given name, or nil.
func (c *Command) Argument(name string) *Argument {
	for _, arg := range c.arguments {
		if arg.name == name {
			return arg
		}
	}
	return nil
}

// Flag returns the flag with the given long name, or nil.
func (c *Command) Flag(name string) *Flag {
	for _, f := range c.flags {
		if f.name == name {
			return f
		}
	}
	return nil
}

// ArgumentValue returns the value bound to the named argument, and false if the argument does not
// exist or has no value.
func (c *Command) ArgumentValue(name string) (string, bool) {
	if arg := c.Argument(name); arg != nil {
		return arg.Value()
	}
	return "", false
}

// HasArgument reports whether c declares an argument with the given name.
func (c *Command) HasArgument(name string) bool {
	return c.Argument(name) != nil
}

// findCommand returns the candidate whose name is exactly name, or nil.
func findCommand(name string, candidates []*Command) *Command {
	for _, sub := range candidates {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// findFlag returns the first flag addressed by token, or nil.
func findFlag(token string, flags []*Flag) *Flag {
	for _, f := range flags {
		if f.match(token) {
			return f
		}
	}
	return nil
}

func (c *Command) formatUnknownCommandError(unknownCmd string) error {
	var known []string
	for _, sub := range c.subCommands {
		known = append(known, sub.Name)
	}
	msg := fmt.Sprintf("unknown command %q", unknownCmd)
	if c.parent != nil {
		msg = fmt.Sprintf("unknown subcommand %q for %q", unknownCmd, c.Path())
	}
	return withSuggestions(msg, unknownCmd, known)
}

func (c *Command) formatUnknownFlagError(unknownFlag string) error {
	var known []string
	for _, f := range c.flags {
		known = append(known, "--"+f.name)
		if f.short != 0 {
			known = append(known, "-"+string(f.short))
		}
	}
	return withSuggestions(fmt.Sprintf("unknown flag %q", unknownFlag), unknownFlag, known)
}

func withSuggestions(msg, target string, known []string) error {
	suggestions := suggest.FindSimilar(target, known, 3)
	if len(suggestions) > 0 {
		return fmt.Errorf("%s. Did you mean one of these?\n\t%s", msg, strings.Join(suggestions, "\n\t"))
	}
	return errors.New(msg)
}
