package clitree

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetRun struct {
	calls int
	name  string
	named bool
	loud  bool
}

// newGreetRoot builds
//
//	prog
//	└── greet <name> --loud/-l
func newGreetRoot(t *testing.T, rec *greetRun) *Command {
	t.Helper()
	root := NewCommand("prog", "A friendly program", nil)
	greet := NewCommand("greet", "Say hello", func(ctx context.Context, s *State) error {
		rec.calls++
		rec.name, rec.named = s.GetArgument("name")
		rec.loud = s.GetFlag("loud")
		return nil
	})
	require.NoError(t, greet.AddArgument(NewArgument("name", "Who to greet", true)))
	require.NoError(t, greet.AddFlag(NewFlag("loud", 'l', "Shout the greeting")))
	require.NoError(t, root.AddSubCommand(greet))
	return root
}

func TestParseAndRun(t *testing.T) {
	t.Parallel()

	t.Run("greet with argument and flag", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "greet", "Alice", "--loud"}, &RunOptions{Stderr: stderr})
		require.NoError(t, err)
		assert.Equal(t, 0, ExitCode(err))
		assert.Equal(t, 1, rec.calls)
		assert.True(t, rec.named)
		assert.Equal(t, "Alice", rec.name)
		assert.True(t, rec.loud)
		assert.Empty(t, stderr.String())
	})
	t.Run("greet missing name", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "greet"}, &RunOptions{Stderr: stderr})
		require.Error(t, err)
		assert.Equal(t, -2, ExitCode(err))
		assert.Equal(t, 0, rec.calls)
		assert.Contains(t, stderr.String(), `error: required argument "name" is missing`)
		assert.Contains(t, stderr.String(), "Help for: prog greet")
	})
	t.Run("help for root", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "help"}, &RunOptions{Stderr: stderr})
		require.NoError(t, err)
		assert.Equal(t, 0, rec.calls)
		assert.Contains(t, stderr.String(), "Commands:\n  greet    Say hello")
		assert.Contains(t, stderr.String(), "Usage:\n  prog [command] [OPTIONS] [arguments]")
	})
	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "badcmd"}, &RunOptions{Stderr: stderr})
		require.Error(t, err)
		assert.Equal(t, -5, ExitCode(err))
		assert.Contains(t, stderr.String(), `error: unknown command "badcmd"`)
		assert.Contains(t, stderr.String(), "Usage:\n  prog [command]")
	})
	t.Run("too many arguments", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "greet", "Alice", "extra"}, &RunOptions{Stderr: stderr})
		require.Error(t, err)
		assert.Equal(t, -2, ExitCode(err))
		assert.Equal(t, 0, rec.calls)
		assert.Contains(t, stderr.String(), `error: too many arguments: "extra"`)
		assert.Contains(t, stderr.String(), "Help for: prog greet")
	})
	t.Run("program name only never runs a handler", func(t *testing.T) {
		t.Parallel()
		var count int
		root := NewCommand("prog", "", func(ctx context.Context, s *State) error {
			count++
			return nil
		})
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog"}, &RunOptions{Stderr: stderr})
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.Contains(t, stderr.String(), "Usage:")
	})
	t.Run("help after arguments", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "greet", "Alice", "--bogus", "help", "more"}, &RunOptions{Stderr: stderr})
		require.NoError(t, err)
		assert.Equal(t, 0, rec.calls)
		assert.Contains(t, stderr.String(), "Help for: prog greet")
		assert.NotContains(t, stderr.String(), "error:")
	})
	t.Run("group shows help", func(t *testing.T) {
		t.Parallel()
		root := NewCommand("prog", "", nil)
		remote := NewCommand("remote", "Manage remotes", nil)
		require.NoError(t, remote.AddSubCommand(NewCommand("list", "List remotes", func(ctx context.Context, s *State) error { return nil })))
		require.NoError(t, root.AddSubCommand(remote))
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "remote"}, &RunOptions{Stderr: stderr})
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Help for: prog remote")
		assert.Contains(t, stderr.String(), `Use "prog remote [command] help"`)
	})
	t.Run("custom usage func", func(t *testing.T) {
		t.Parallel()
		root := NewCommand("prog", "", nil)
		root.UsageFunc = func(c *Command) string { return "custom help for " + c.Name }
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "--help"}, &RunOptions{Stderr: stderr})
		require.NoError(t, err)
		assert.Equal(t, "custom help for prog\n", stderr.String())
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("not parsed", func(t *testing.T) {
		t.Parallel()
		err := Run(context.Background(), NewCommand("prog", "", nil), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "command has not been parsed")

		err = Run(context.Background(), nil, nil)
		require.Error(t, err)
	})
	t.Run("parse and run repeatedly", func(t *testing.T) {
		t.Parallel()
		var count int

		root := NewCommand("count", "", nil)
		inc := NewCommand("inc", "Increment", func(ctx context.Context, s *State) error {
			if s.GetFlag("dry-run") {
				return nil
			}
			count++
			return nil
		})
		require.NoError(t, inc.AddFlag(NewFlag("dry-run", 'd', "dry run")))
		require.NoError(t, root.AddSubCommand(inc))

		for i := 0; i < 3; i++ {
			err := ParseAndRun(context.Background(), root, []string{"count", "inc"}, nil)
			require.NoError(t, err)
		}
		require.Equal(t, 3, count)

		err := ParseAndRun(context.Background(), root, []string{"count", "inc", "-d"}, nil)
		require.NoError(t, err)
		require.Equal(t, 3, count)

		// The flag stays set for later runs on the same tree.
		err = ParseAndRun(context.Background(), root, []string{"count", "inc"}, nil)
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})
	t.Run("exec error is returned verbatim", func(t *testing.T) {
		t.Parallel()
		errBoom := errors.New("boom")
		root := NewCommand("prog", "", nil)
		require.NoError(t, root.AddSubCommand(NewCommand("fail", "Always fails", func(ctx context.Context, s *State) error {
			return errBoom
		})))
		stderr := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "fail"}, &RunOptions{Stderr: stderr})
		require.ErrorIs(t, err, errBoom)
		assert.Same(t, errBoom, err)
		assert.Equal(t, 1, ExitCode(err))
		assert.Contains(t, stderr.String(), "error: command execution failed: boom")
		assert.Contains(t, stderr.String(), "Help for: prog fail")
	})
	t.Run("exec error with code", func(t *testing.T) {
		t.Parallel()
		root := NewCommand("prog", "", nil)
		require.NoError(t, root.AddSubCommand(NewCommand("find", "", func(ctx context.Context, s *State) error {
			return NewError(ErrNotFound, errors.New("no such task"))
		})))

		err := ParseAndRun(context.Background(), root, []string{"prog", "find"}, &RunOptions{Stderr: bytes.NewBuffer(nil)})
		require.Error(t, err)
		assert.Equal(t, -3, ExitCode(err))
	})
	t.Run("help command failure prints no help", func(t *testing.T) {
		t.Parallel()
		root := NewCommand("prog", "", nil)
		docs := NewCommand("docs", "", nil)
		require.NoError(t, docs.AddSubCommand(NewCommand("help", "", func(ctx context.Context, s *State) error {
			return errors.New("no docs")
		})))
		require.NoError(t, root.AddSubCommand(docs))
		stderr := bytes.NewBuffer(nil)

		require.NoError(t, Parse(root, []string{"prog", "docs"}))
		// Select the help node directly, the help token would short-circuit resolution.
		root.selected = &selection{cmd: docs.SubCommands()[0]}
		err := Run(context.Background(), root, &RunOptions{Stderr: stderr})
		require.EqualError(t, err, "no docs")
		assert.Empty(t, stderr.String())
	})
	t.Run("state streams and release", func(t *testing.T) {
		t.Parallel()
		var kept *State
		root := NewCommand("prog", "", nil)
		echo := NewCommand("echo", "", func(ctx context.Context, s *State) error {
			kept = s
			v, _ := s.GetArgument("text")
			_, err := s.Stdout.Write([]byte(v + "\n"))
			assert.Equal(t, "echo", s.Command().Name)
			return err
		})
		require.NoError(t, echo.AddArgument(NewArgument("text", "", true)))
		require.NoError(t, root.AddSubCommand(echo))
		stdout := bytes.NewBuffer(nil)

		err := ParseAndRun(context.Background(), root, []string{"prog", "echo", "hi"}, &RunOptions{Stdout: stdout})
		require.NoError(t, err)
		assert.Equal(t, "hi\n", stdout.String())

		require.NotNil(t, kept)
		assert.Nil(t, kept.Command())
		_, ok := kept.GetArgument("text")
		assert.False(t, ok)
	})
	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()
		var rec greetRun
		root := newGreetRoot(t, &rec)
		logs := bytes.NewBuffer(nil)
		logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

		err := ParseAndRun(context.Background(), root, []string{"prog", "greet", "Bob", "-l"}, &RunOptions{Logger: logger})
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "running command")
		assert.Contains(t, logs.String(), `command="prog greet"`)
		assert.Contains(t, logs.String(), "name=Bob")

		logs.Reset()
		err = ParseAndRun(context.Background(), root, []string{"prog", "nope"}, &RunOptions{Logger: logger, Stderr: bytes.NewBuffer(nil)})
		require.Error(t, err)
		assert.Contains(t, logs.String(), "parse failed")
		assert.Contains(t, logs.String(), "code=-5")
	})
}
