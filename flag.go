package clitree

// Flag is a named boolean switch with an optional one-character short form. A zero short form
// means the flag has none.
type Flag struct {
	name        string
	short       rune
	description string

	set bool
}

// NewFlag returns a new flag addressed as --name on the command line, and as -short when short is
// not zero.
func NewFlag(name string, short rune, description string) *Flag {
	return &Flag{
		name:        name,
		short:       short,
		description: description,
	}
}

// Set marks the flag as set. Setting a flag more than once has no further effect; there is no way
// to unset a flag.
func (f *Flag) Set() {
	f.set = true
}

func (f *Flag) Name() string        { return f.name }
func (f *Flag) Short() rune         { return f.short }
func (f *Flag) Description() string { return f.description }
func (f *Flag) IsSet() bool         { return f.set }

// match reports whether token addresses this flag. Long forms are "--name", short forms are "-c".
func (f *Flag) match(token string) bool {
	switch {
	case len(token) > 2 && token[:2] == "--":
		return token[2:] == f.name
	case len(token) > 1 && token[0] == '-' && token[1] != '-':
		r := []rune(token[1:])
		return len(r) == 1 && f.short != 0 && r[0] == f.short
	}
	return false
}
