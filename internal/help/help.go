// Package help provides the help text collaborator of the argument engine and
// a builder for consistent, styled help output.
package help

import (
	"strings"

	"github.com/toejough/argue/internal/flags"
)

// Help is the text shown when a user asks for help, together with the flag
// that asks for it and the lines that summarize usage.
type Help struct {
	text     string
	flag     flags.Flag
	first    int
	last     int
	usageSet bool
}

// New returns help showing text, raised by the default --help, -h flag.
func New(text string) Help {
	return Help{text: text, flag: flags.Help}
}

// Flag returns the flag that asks for this help.
func (h Help) Flag() flags.Flag {
	return h.flag
}

// Text returns the full help text.
func (h Help) Text() string {
	return h.text
}

// Usage returns the usage lines of the help text, or "" if none were marked.
func (h Help) Usage() string {
	if !h.usageSet {
		return ""
	}

	lines := strings.Split(h.text, "\n")
	if h.first >= len(lines) {
		return ""
	}

	last := min(h.last, len(lines)-1)

	return strings.Join(lines[h.first:last+1], "\n")
}

// WithFlag returns a copy of h raised by f instead of the default flag.
func (h Help) WithFlag(f flags.Flag) Help {
	h.flag = f
	return h
}

// WithUsage returns a copy of h whose usage summary is lines first through
// last of the text, zero-indexed and inclusive. The summary is printed under
// errors such as a missing positional.
func (h Help) WithUsage(first, last int) Help {
	if first < 0 || last < first {
		h.usageSet = false
		return h
	}

	h.first, h.last, h.usageSet = first, last, true

	return h
}
