package clitree

import (
	"io"
)

// State is the execution state handed to a command's Exec function. It is a read-only view of the
// arguments and flags of the selected command, and is only valid for the duration of that one
// call: once Exec returns, lookups report nothing.
type State struct {
	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	cmd       *Command
	arguments []*Argument
	flags     []*Flag
}

func newState(cmd *Command, opt *RunOptions) *State {
	return &State{
		Stdin:     opt.Stdin,
		Stdout:    opt.Stdout,
		Stderr:    opt.Stderr,
		cmd:       cmd,
		arguments: cmd.arguments,
		flags:     cmd.flags,
	}
}

// release detaches the state from its command.
func (s *State) release() {
	s.cmd = nil
	s.arguments = nil
	s.flags = nil
}

// Command returns the command being executed, or nil once execution has finished.
func (s *State) Command() *Command {
	return s.cmd
}

// GetArgument returns the value bound to the named argument of the executing command. The boolean
// is false if the command has no such argument or nothing was bound to it.
func (s *State) GetArgument(name string) (string, bool) {
	for _, arg := range s.arguments {
		if arg.name == name {
			return arg.Value()
		}
	}
	return "", false
}

// GetFlag reports whether the named flag of the executing command is set. Unknown names report
// false.
func (s *State) GetFlag(name string) bool {
	for _, f := range s.flags {
		if f.name == name {
			return f.set
		}
	}
	return false
}
