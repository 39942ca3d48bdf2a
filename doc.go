// Package clitree provides a small engine for command-line applications built as a tree of named
// commands. Each command declares positional arguments and boolean flags; a single call resolves
// the program's argument vector to one command, binds its values and runs its Exec function.
//
// Resolution walks leading tokens as exact subcommand names. Remaining tokens starting with "-"
// are flags, either "--name" or a one-character "-c"; every other token fills the next positional
// argument in declaration order. The literal tokens "help", "--help" and "-h" anywhere in the input
// show the help of the command named by the tokens before them.
//
// Parse failures and handler failures are reported on the error stream together with the help of
// the most specific command reached, and are returned as an [*Error] whose [ErrorCode] maps to a
// process status through [ExitCode].
package clitree
