package clitree

import "errors"

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

func newCommandError(code ErrorCode, cmd *Command, err error) *Error {
	return &Error{code: code, err: err, cmd: cmd}
}

// ErrorCode represents an error code for a specific error type. The numeric values are the status
// codes reported to the host, see [ExitCode].
type ErrorCode int

const (
	// ErrMemory is reserved for hosts that map allocation failures onto the status table.
	ErrMemory ErrorCode = -(iota + 1)
	// ErrInvalidArgument reports bad input, a missing required argument or too many positionals.
	ErrInvalidArgument
	// ErrNotFound reports an unresolved command path.
	ErrNotFound
	// ErrAlreadyExists reports a duplicate sibling command name.
	ErrAlreadyExists
	// ErrParseFailed reports an unknown command, subcommand or flag.
	ErrParseFailed
	// ErrContextFailed reports that no execution state could be built for dispatch.
	ErrContextFailed
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrMemory:
		return "allocation failure"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrNotFound:
		return "not found"
	case ErrAlreadyExists:
		return "already exists"
	case ErrParseFailed:
		return "parse failed"
	case ErrContextFailed:
		return "context construction failed"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
	// cmd is the most specific command reached when the error occurred, if any.
	cmd *Command
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Command returns the command whose help describes the failure. It is nil for errors that did not
// come from parsing.
func (e *Error) Command() *Command {
	return e.cmd
}

// ExitCode converts an error returned by this package, or by a command's Exec function, into a
// process status code. A nil error is 0, an [*Error] reports its code, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return int(cliErr.code)
	}
	return 1
}
