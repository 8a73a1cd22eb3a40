// Package lex turns raw process arguments into the token stream and the
// occurrence index consumed by the argument engine.
package lex

import (
	"fmt"
	"strings"
)

// Exported constants.
const (
	// FlagPrefix marks a long option. Its first character must be SwitchPrefix.
	FlagPrefix = "--"
	// SwitchPrefix marks a bundle of single-character options.
	SwitchPrefix = "-"
)

// Kind identifies the variant held by a Token.
type Kind int

// Kind values.
const (
	Unattached Kind = iota
	Attached
	Flag
	Switch
	EmptySwitch
	Terminator
	Ignore
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Unattached:
		return "unattached"
	case Attached:
		return "attached"
	case Flag:
		return "flag"
	case Switch:
		return "switch"
	case EmptySwitch:
		return "empty-switch"
	case Terminator:
		return "terminator"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Token is one lexed element of the command line. Pos is the index of the
// argument it came from, with the program name excluded.
type Token struct {
	Kind Kind
	Pos  int
	Text string // Unattached, Attached and Ignore only
	Char rune   // Switch only
}

// HasText reports whether the token carries text.
func (t Token) HasText() bool {
	switch t.Kind {
	case Unattached, Attached, Ignore:
		return true
	default:
		return false
	}
}

// TakeText returns the text carried by the token. Calling it on a flag,
// switch or terminator is a programming error and panics.
func (t Token) TakeText() string {
	if !t.HasText() {
		panic(fmt.Sprintf("cannot take text from %s token at position %d", t.Kind, t.Pos))
	}

	return t.Text
}

// Lex converts args into a token sequence and its occurrence index. The first
// element of args is the program name and is skipped.
func Lex(args []string) ([]Token, Index) {
	tokens := []Token{}
	index := Index{}
	terminated := false

	if len(args) == 0 {
		return tokens, index
	}

	for i, arg := range args[1:] {
		switch {
		case terminated:
			tokens = append(tokens, Token{Kind: Ignore, Pos: i, Text: arg})
		case strings.HasPrefix(arg, SwitchPrefix):
			opt, value, attached := strings.Cut(arg, "=")

			if name, ok := strings.CutPrefix(opt, FlagPrefix); ok {
				if name == "" {
					tokens = append(tokens, Token{Kind: Terminator, Pos: i})
					terminated = true
				} else {
					index.add(FlagTag(name), len(tokens))
					tokens = append(tokens, Token{Kind: Flag, Pos: i})
				}
			} else {
				tokens = lexSwitches(tokens, index, i, opt[len(SwitchPrefix):])
			}

			// the value split off by '=' sits directly behind its option,
			// even when the option turned out to be the terminator
			if attached {
				tokens = append(tokens, Token{Kind: Attached, Pos: i, Text: value})
			}
		default:
			tokens = append(tokens, Token{Kind: Unattached, Pos: i, Text: arg})
		}
	}

	return tokens, index
}

// lexSwitches splits a switch bundle into one token per character.
func lexSwitches(tokens []Token, index Index, pos int, bundle string) []Token {
	if bundle == "" {
		index.add(SwitchTag(""), len(tokens))
		return append(tokens, Token{Kind: EmptySwitch, Pos: pos})
	}

	for _, c := range bundle {
		index.add(SwitchTag(string(c)), len(tokens))
		tokens = append(tokens, Token{Kind: Switch, Pos: pos, Char: c})
	}

	return tokens
}
