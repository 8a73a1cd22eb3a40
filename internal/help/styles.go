// Package help styling definitions.
// This file defines lipgloss styles for consistent terminal output.

package help

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds all the lipgloss styles used for help and error rendering.
type Styles struct {
	// Header is the style for section headers (bold).
	Header lipgloss.Style

	// Flag is the style for flag names (cyan).
	Flag lipgloss.Style

	// Placeholder is the style for placeholder values (yellow).
	Placeholder lipgloss.Style

	// Error is the style for the "error:" prefix (bold red).
	Error lipgloss.Style

	// Suggestion is the style for "did you mean" candidates (green).
	Suggestion lipgloss.Style
}

// NewStyles returns styles bound to a renderer for w. When color is false the
// renderer is forced to the ASCII profile and every style renders plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return stylesFrom(r)
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return stylesFrom(lipgloss.DefaultRenderer())
}

// PlainStyles returns styles that never emit escape codes.
func PlainStyles() Styles {
	return NewStyles(io.Discard, false)
}

func stylesFrom(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:      r.NewStyle().Bold(true),
		Flag:        r.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Placeholder: r.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Error:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Suggestion:  r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
