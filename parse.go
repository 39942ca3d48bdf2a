package clitree

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// selection records what the last Parse call resolved to.
type selection struct {
	cmd *Command
	// help is set when the command's help should be shown instead of running it.
	help bool
}

// Parse resolves args against the command hierarchy rooted at root, binds positional arguments and
// flags of the selected command, and validates that its required arguments are present. It returns
// an error if parsing fails at any point. On failure, [Error.Command] names the command whose help
// best describes the problem.
//
// args is the full argument vector, typically os.Args: args[0] is the program name and is skipped.
// Once parsing is complete, the root command is ready to be executed with the [Run] function.
//
// Bound values are not reset between calls. A second Parse on the same tree sees values bound by the
// first one unless new tokens overwrite them.
func Parse(root *Command, args []string) error {
	if root == nil {
		return NewError(ErrInvalidArgument, errors.New("failed to parse: root command is nil"))
	}
	root.selected = nil
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	var tokens []string
	if len(args) > 1 {
		tokens = args[1:]
	}
	if len(tokens) == 0 {
		root.selected = &selection{cmd: root, help: true}
		return nil
	}

	// A help request anywhere wins over flag, argument and subcommand errors. Only the tokens
	// before it select the command.
	if i := slices.IndexFunc(tokens, isHelpToken); i >= 0 {
		target, _ := resolve(root, tokens[:i])
		root.selected = &selection{cmd: target, help: true}
		return nil
	}

	current, consumed := resolve(root, tokens)
	rest := tokens[consumed:]
	if len(rest) > 0 && !isFlagToken(rest[0]) {
		// A leaf root that declares arguments takes its first token positionally.
		leafWithArgs := len(root.subCommands) == 0 && len(root.arguments) > 0
		if consumed == 0 && !leafWithArgs {
			return newCommandError(ErrParseFailed, root, root.formatUnknownCommandError(rest[0]))
		}
		if current.Exec == nil {
			return newCommandError(ErrParseFailed, current, current.formatUnknownCommandError(rest[0]))
		}
	}

	if err := bind(current, rest); err != nil {
		return err
	}
	for _, arg := range current.arguments {
		if arg.required && !arg.bound {
			return newCommandError(ErrInvalidArgument, current, fmt.Errorf("required argument %q is missing", arg.name))
		}
	}

	root.selected = &selection{cmd: current}
	return nil
}

// resolve walks tokens from cmd as exact subcommand names and returns the deepest command reached
// along with the number of tokens consumed. It stops at the first flag or unmatched token.
func resolve(cmd *Command, tokens []string) (*Command, int) {
	current := cmd
	var consumed int
	for _, token := range tokens {
		if isFlagToken(token) {
			break
		}
		sub := findCommand(token, current.subCommands)
		if sub == nil {
			break
		}
		current = sub
		consumed++
	}
	return current, consumed
}

// bind sets flags and fills positional arguments of cmd in declaration order.
func bind(cmd *Command, tokens []string) error {
	var next int
	for _, token := range tokens {
		if isFlagToken(token) {
			f := findFlag(token, cmd.flags)
			if f == nil {
				return newCommandError(ErrParseFailed, cmd, cmd.formatUnknownFlagError(token))
			}
			f.Set()
			continue
		}
		if next >= len(cmd.arguments) {
			if len(cmd.arguments) == 0 {
				return newCommandError(ErrInvalidArgument, cmd, fmt.Errorf("command %q takes no arguments, got %q", cmd.Path(), token))
			}
			return newCommandError(ErrInvalidArgument, cmd, fmt.Errorf("too many arguments: %q", token))
		}
		cmd.arguments[next].SetValue(token)
		next++
	}
	return nil
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "-")
}

func isHelpToken(token string) bool {
	return token == "help" || token == "--help" || token == "-h"
}

func validateCommands(root *Command, path []string) error {
	if err := validateName("command", root.Name); err != nil {
		if len(path) == 0 {
			return fmt.Errorf("root command: %w", err)
		}
		return fmt.Errorf("subcommand in path %q: %w", strings.Join(path, " "), err)
	}

	// Add current command to path for nested validation
	currentPath := append(slices.Clone(path), root.Name)

	seen := make(map[string]bool, len(root.subCommands))
	for _, sub := range root.subCommands {
		if seen[sub.Name] {
			return NewError(ErrAlreadyExists, fmt.Errorf("command %q has more than one subcommand named %q", strings.Join(currentPath, " "), sub.Name))
		}
		seen[sub.Name] = true
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}
