// Package help rendering functions.
// This file handles the actual rendering of help content with proper styling.

package help

import (
	"strings"

	"github.com/toejough/argue/internal/flags"
)

// Help renders the content and returns it as engine help, with the usage line
// marked so errors can quote it.
func (b *Builder) Help() Help {
	lines, usageLine := b.lines()

	return New(strings.Join(lines, "\n")).
		WithFlag(b.helpFlag).
		WithUsage(usageLine, usageLine)
}

// Render returns the styled help text. Sections appear in a fixed order:
// description, usage, arguments, flags, formats, commands, examples.
func (b *Builder) Render() string {
	lines, _ := b.lines()
	return strings.Join(lines, "\n")
}

func (b *Builder) flagRows() [][2]string {
	rows := make([][2]string, 0, len(b.flags)+len(b.options)+1)

	for _, f := range b.flags {
		rows = append(rows, [2]string{b.styles.Flag.Render(f.Usage()), f.Desc})
	}

	for _, o := range b.options {
		usage := b.styles.Flag.Render(o.Flag.Usage()) + " " + b.styles.Placeholder.Render(o.ValueName())
		rows = append(rows, [2]string{usage, o.Desc})
	}

	rows = append(rows, [2]string{b.styles.Flag.Render(b.helpFlag.Usage()), b.helpFlag.Desc})

	return rows
}

func (b *Builder) generatedUsage() string {
	parts := []string{b.name}

	if len(b.flags) > 0 || len(b.options) > 0 {
		parts = append(parts, "[flags]")
	}

	for _, p := range b.positionals {
		parts = append(parts, p.String())
	}

	if len(b.subcommands) > 0 {
		parts = append(parts, "<command>")
	}

	return strings.Join(parts, " ")
}

// lines renders every section and reports which line holds the usage.
func (b *Builder) lines() ([]string, int) {
	var lines []string

	if b.description != "" {
		lines = append(lines, b.description, "")
	}

	usage := b.usage
	if usage == "" {
		usage = b.generatedUsage()
	}

	lines = append(lines, b.styles.Header.Render("Usage:"))
	usageLine := len(lines)
	lines = append(lines, indent+usage)

	if len(b.positionals) > 0 {
		rows := make([][2]string, 0, len(b.positionals))
		for _, p := range b.positionals {
			rows = append(rows, [2]string{b.styles.Placeholder.Render(p.String()), p.Desc})
		}

		lines = b.section(lines, "Arguments:", rows)
	}

	lines = b.section(lines, "Flags:", b.flagRows())

	if placeholders := flags.PlaceholdersUsedBy(b.options); len(placeholders) > 0 {
		rows := make([][2]string, 0, len(placeholders))
		for _, p := range placeholders {
			rows = append(rows, [2]string{b.styles.Placeholder.Render(p.Name), p.Format})
		}

		lines = b.section(lines, "Formats:", rows)
	}

	if len(b.subcommands) > 0 {
		rows := make([][2]string, 0, len(b.subcommands))
		for _, s := range b.subcommands {
			rows = append(rows, [2]string{s.Name, s.Desc})
		}

		lines = b.section(lines, "Commands:", rows)
	}

	if len(b.examples) > 0 {
		lines = append(lines, "", b.styles.Header.Render("Examples:"))
		for _, e := range b.examples {
			lines = append(lines, indent+e.Title+":", indent+indent+e.Code)
		}
	}

	return lines, usageLine
}

// section appends a titled two-column table with aligned descriptions.
func (b *Builder) section(lines []string, title string, rows [][2]string) []string {
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(StripANSI(row[0]))))
	}

	lines = append(lines, "", b.styles.Header.Render(title))

	for _, row := range rows {
		if row[1] == "" {
			lines = append(lines, indent+row[0])
			continue
		}

		lines = append(lines, indent+padRight(row[0], width+columnGap)+row[1])
	}

	return lines
}

// unexported constants.
const (
	columnGap = 2
	indent    = "  "
)
