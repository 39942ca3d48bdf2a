package clitree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseAndRun parses the command hierarchy and runs the command. A convenience function that
// combines [Parse] and [Run] into a single call. See [Parse] and [Run] for more details.
//
// Unlike calling [Parse] directly, parse failures are reported: an error line naming the offending
// token is written to the Stderr stream, followed by the help of the most specific command reached.
func ParseAndRun(
	ctx context.Context,
	root *Command,
	args []string,
	options *RunOptions,
) error {
	options = checkAndSetRunOptions(options)
	if err := Parse(root, args); err != nil {
		reportParseError(options, err)
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively). Help text and diagnostics are written to Stderr.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives debug records about resolution and dispatch. If nil, nothing is logged.
	Logger *slog.Logger
}

// Run executes the command selected by the last [Parse] call on root. It returns an error if the
// command has not been parsed, or the error returned by the command's Exec function unchanged.
//
// If parsing selected a help request, or a command with no execution function, the command's help
// is written to Stderr and Run returns nil. When Exec fails, a failure notice and the command's help
// are written to Stderr, except for commands named "help".
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, root *Command, options *RunOptions) error {
	if root == nil || root.selected == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)

	cmd := root.selected.cmd
	if cmd == nil {
		return NewError(ErrContextFailed, errors.New("no command selected to run"))
	}
	logger := options.Logger.With("command", cmd.Path())

	if root.selected.help {
		logger.Debug("help requested")
		return cmd.showHelp(options.Stderr)
	}
	if cmd.Exec == nil {
		logger.Debug("group command selected, showing help")
		return cmd.showHelp(options.Stderr)
	}

	s := newState(cmd, options)
	logger.Debug("running command", "arguments", boundArguments(cmd), "flags", setFlags(cmd))
	err := cmd.Exec(ctx, s)
	s.release()
	if err != nil {
		logger.Debug("command failed", "error", err, "code", ExitCode(err))
		if cmd.Name != "help" {
			fmt.Fprintf(options.Stderr, "error: command execution failed: %v\n\n", err)
			_ = cmd.showHelp(options.Stderr)
		}
		return err
	}
	return nil
}

func reportParseError(opt *RunOptions, err error) {
	opt.Logger.Debug("parse failed", "error", err, "code", ExitCode(err))
	fmt.Fprintf(opt.Stderr, "error: %v\n", err)
	var cliErr *Error
	if errors.As(err, &cliErr) && cliErr.cmd != nil {
		fmt.Fprintln(opt.Stderr)
		_ = cliErr.cmd.showHelp(opt.Stderr)
	}
}

func boundArguments(cmd *Command) []string {
	var out []string
	for _, arg := range cmd.arguments {
		if v, ok := arg.Value(); ok {
			out = append(out, arg.name+"="+v)
		}
	}
	return out
}

func setFlags(cmd *Command) []string {
	var out []string
	for _, f := range cmd.flags {
		if f.set {
			out = append(out, f.name)
		}
	}
	return out
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	} else {
		copied := *opt
		opt = &copied
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opt
}
