package clitree

// Argument is a named positional value slot. Arguments bind in the order they were added to their
// command.
type Argument struct {
	name        string
	description string
	required    bool

	value string
	bound bool
}

// NewArgument returns a new positional argument. Required arguments must be bound, either by a
// token or by a prior call to [Argument.Default] or [Argument.SetValue], before the owning command
// can run.
func NewArgument(name, description string, required bool) *Argument {
	return &Argument{
		name:        name,
		description: description,
		required:    required,
	}
}

// Default sets the value an optional argument reports when no token binds it. It returns the
// argument so it can be chained with [NewArgument].
func (a *Argument) Default(value string) *Argument {
	a.SetValue(value)
	return a
}

// SetValue binds value to the argument, replacing any previous value.
func (a *Argument) SetValue(value string) {
	a.value = value
	a.bound = true
}

func (a *Argument) Name() string        { return a.name }
func (a *Argument) Description() string { return a.description }
func (a *Argument) Required() bool      { return a.required }

// Value returns the bound value and whether one has been bound.
func (a *Argument) Value() (string, bool) {
	return a.value, a.bound
}
