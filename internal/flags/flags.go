// Package flags describes the arguments a program declares to the engine:
// boolean flags, value-bearing options and positionals.
// The engine records every declaration it is asked about so that errors can
// name the argument at fault and suggest spellings from declared names.
package flags

import "unicode/utf8"

// Exported variables.
var (
	// Help is the default flag that asks for help text.
	//
	//nolint:gochecknoglobals // Read-only default, initialized once.
	Help = Flag{Long: "help", Short: 'h', Desc: "Show help"}
)

// Arg is one entry in the known-argument ledger.
type Arg interface {
	// String renders the argument as it should appear in messages.
	String() string
	ledger()
}

// Flag describes a boolean, value-free argument.
type Flag struct {
	Long  string // without "--", e.g. "verbose"
	Short rune   // without "-", zero if none
	Desc  string // help text
}

// HasShort reports whether the flag has a single-character form.
func (f Flag) HasShort() bool {
	return f.Short != 0
}

// String renders the flag as "--long".
func (f Flag) String() string {
	return "--" + f.Long
}

// Usage renders both spellings, e.g. "--verbose, -v".
func (f Flag) Usage() string {
	if !f.HasShort() {
		return f.String()
	}

	return f.String() + ", -" + string(f.Short)
}

func (Flag) ledger() {}

// Optional describes a value-bearing argument.
type Optional struct {
	Flag

	Placeholder *Placeholder // value placeholder shown in usage (nil for "<value>")
}

// String renders the option as "--long <placeholder>".
func (o Optional) String() string {
	return o.Flag.String() + " " + o.ValueName()
}

// Usage renders both spellings and the value placeholder.
func (o Optional) Usage() string {
	return o.Flag.Usage() + " " + o.ValueName()
}

// ValueName returns the placeholder name of the option's value.
func (o Optional) ValueName() string {
	if o.Placeholder == nil {
		return PlaceholderValue.Name
	}

	return o.Placeholder.Name
}

func (Optional) ledger() {}

// Positional describes an argument matched by position.
type Positional struct {
	Name string
	Desc string
}

// String renders the positional as "<name>".
func (p Positional) String() string {
	return "<" + p.Name + ">"
}

func (Positional) ledger() {}

// Names returns the long names of every flag and option in args, in order.
// Positionals are skipped: they have no spelling a user could mistype.
func Names(args []Arg) []string {
	var out []string

	for _, a := range args {
		switch v := a.(type) {
		case Flag:
			out = append(out, v.Long)
		case Optional:
			out = append(out, v.Long)
		}
	}

	return out
}

// ParseShort converts a one-character string to a switch rune. An empty
// string yields zero; anything longer than one character is rejected.
func ParseShort(s string) (rune, bool) {
	if s == "" {
		return 0, true
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}

	return r, true
}
