package clitree

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mfridman/clitree/pkg/textutil"
)

const helpWidth = 80

// DefaultUsage renders the help text of c. It is used for every command that does not set a
// UsageFunc.
//
// The root command lists its description, a generic usage line and its subcommands. Any other
// command is introduced by its full path and lists its arguments, flags and subcommands.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}

	var b strings.Builder

	if c.parent == nil {
		b.WriteString(c.Name + "\n\n")
	} else {
		b.WriteString("Help for: " + c.Path() + "\n\n")
	}

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, helpWidth) {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n")
	if c.Usage != "" {
		b.WriteString("  " + c.Usage + "\n")
	} else {
		b.WriteString("  " + usageLine(c) + "\n")
	}
	b.WriteString("\n")

	if len(c.arguments) > 0 {
		b.WriteString("Arguments:\n")
		writeArgumentSection(&b, c.arguments)
		b.WriteString("\n")
	}

	if len(c.flags) > 0 {
		b.WriteString("Flags:\n")
		writeFlagSection(&b, c.flags)
		b.WriteString("\n")
	}

	if len(c.subCommands) > 0 {
		b.WriteString("Commands:\n")
		writeCommandSection(&b, c.subCommands)
		b.WriteString("\n")
		fmt.Fprintf(&b, "Use \"%s [command] help\" for more information about a command.\n", c.Path())
	}

	return strings.TrimRight(b.String(), "\n")
}

func usageLine(c *Command) string {
	if c.parent == nil {
		return c.Name + " [command] [OPTIONS] [arguments]"
	}
	parts := []string{c.Path()}
	for _, arg := range c.arguments {
		if arg.required {
			parts = append(parts, "<"+arg.name+">")
		}
	}
	for _, arg := range c.arguments {
		if !arg.required {
			parts = append(parts, "["+arg.name+"]")
		}
	}
	if len(c.flags) > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	if len(c.subCommands) > 0 {
		parts = append(parts, "COMMAND")
	}
	return strings.Join(parts, " ")
}

type helpRow struct {
	name string
	text string
}

// writeRows writes rows as an aligned two-column table.
func writeRows(b *strings.Builder, rows []helpRow) {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, len(r.name))
	}
	for _, r := range rows {
		for _, line := range textutil.Columns("  ", r.name, maxLen+4, r.text, helpWidth) {
			b.WriteString(line + "\n")
		}
	}
}

func writeArgumentSection(b *strings.Builder, args []*Argument) {
	rows := make([]helpRow, 0, len(args))
	for _, arg := range args {
		text := arg.description
		if arg.required {
			text += " (required)"
		} else if v, ok := arg.Value(); ok {
			text += fmt.Sprintf(" [default: %s]", v)
		}
		rows = append(rows, helpRow{name: arg.name, text: strings.TrimSpace(text)})
	}
	writeRows(b, rows)
}

func writeFlagSection(b *strings.Builder, flags []*Flag) {
	rows := make([]helpRow, 0, len(flags))
	for _, f := range flags {
		name := "    --" + f.name
		if f.short != 0 {
			name = "-" + string(f.short) + ", --" + f.name
		}
		rows = append(rows, helpRow{name: name, text: f.description})
	}
	writeRows(b, rows)
}

func writeCommandSection(b *strings.Builder, commands []*Command) {
	sortedCommands := slices.Clone(commands)
	slices.SortFunc(sortedCommands, func(a, b *Command) int {
		return cmp.Compare(a.Name, b.Name)
	})
	rows := make([]helpRow, 0, len(sortedCommands))
	for _, sub := range sortedCommands {
		rows = append(rows, helpRow{name: sub.Name, text: sub.ShortHelp})
	}
	writeRows(b, rows)
}

func (c *Command) showHelp(w io.Writer) error {
	usage := DefaultUsage(c)
	if c.UsageFunc != nil {
		usage = c.UsageFunc(c)
	}
	_, err := fmt.Fprintln(w, usage)
	return err
}
