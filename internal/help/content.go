// Package help content structures.
// This file defines the data types for help content elements.

package help

import "github.com/toejough/argue/internal/flags"

// Builder holds all help content before rendering.
// Fields are unexported; use builder methods to populate.
type Builder struct {
	name        string
	description string
	usage       string
	positionals []flags.Positional
	flags       []flags.Flag
	options     []flags.Optional
	subcommands []Subcommand
	examples    []Example
	helpFlag    flags.Flag
	styles      Styles
}

// NewBuilder starts help content for the named command.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, helpFlag: flags.Help, styles: DefaultStyles()}
}

// AddExamples appends usage examples.
func (b *Builder) AddExamples(examples ...Example) *Builder {
	b.examples = append(b.examples, examples...)
	return b
}

// AddFlags appends boolean flags.
func (b *Builder) AddFlags(fs ...flags.Flag) *Builder {
	b.flags = append(b.flags, fs...)
	return b
}

// AddOptions appends value-bearing options.
func (b *Builder) AddOptions(opts ...flags.Optional) *Builder {
	b.options = append(b.options, opts...)
	return b
}

// AddPositionals appends positional arguments.
func (b *Builder) AddPositionals(ps ...flags.Positional) *Builder {
	b.positionals = append(b.positionals, ps...)
	return b
}

// AddSubcommands appends subcommand entries.
func (b *Builder) AddSubcommands(subs ...Subcommand) *Builder {
	b.subcommands = append(b.subcommands, subs...)
	return b
}

// WithDescription sets the text shown above the usage line.
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = desc
	return b
}

// WithHelpFlag replaces the flag that asks for this help.
func (b *Builder) WithHelpFlag(f flags.Flag) *Builder {
	b.helpFlag = f
	return b
}

// WithStyles replaces the rendering styles.
func (b *Builder) WithStyles(s Styles) *Builder {
	b.styles = s
	return b
}

// WithUsage overrides the generated usage line.
func (b *Builder) WithUsage(usage string) *Builder {
	b.usage = usage
	return b
}

// Example represents a usage example with title and code.
type Example struct {
	Title string
	Code  string
}

// Subcommand represents a subcommand entry in help output.
type Subcommand struct {
	Name string
	Desc string
}
