package core

import (
	"fmt"

	"github.com/toejough/argue/internal/flags"
	"github.com/toejough/argue/internal/lex"
)

// CheckRemainder claims the terminator and returns every word behind it in
// order. A value attached to the terminator itself ("--=v") fails with
// ErrUnexpectedValue. Without a terminator the remainder is empty.
func (c *Cli) CheckRemainder() ([]string, error) {
	var remainder []string

	start := c.terminator()
	if start < 0 {
		return remainder, nil
	}

	for i := start; i < len(c.slots); i++ {
		tok, ok := c.peek(i)
		if !ok {
			continue
		}

		switch tok.Kind { //nolint:exhaustive // lexing leaves nothing else behind the terminator
		case lex.Terminator:
			c.claim(i)
		case lex.Ignore:
			remainder = append(remainder, c.claim(i).TakeText())
		case lex.Attached:
			c.claim(i)

			return nil, &Error{Kind: KindUnexpectedValue, Arg: flags.Flag{}, Value: tok.Text, Help: c.help}
		default:
			panic(fmt.Sprintf("core: %s token at slot %d behind the terminator", tok.Kind, i))
		}
	}

	return remainder, nil
}

// IsEmpty verifies that every token has been claimed. Words behind an
// unclaimed terminator count as leftovers through the terminator itself.
// IsEmpty claims nothing, so it can be called repeatedly.
func (c *Cli) IsEmpty() error {
	err := c.prioritizeHelp()
	if err != nil {
		return err
	}

	stray, found, err := c.captureBadFlag(len(c.slots))
	if err != nil {
		return err
	}

	if found {
		return &Error{Kind: KindUnexpectedArg, Value: stray, Help: c.help}
	}

	for i := range c.slots {
		tok, ok := c.peek(i)
		if !ok {
			continue
		}

		switch tok.Kind { //nolint:exhaustive // options were reported above
		case lex.Ignore:
			continue
		case lex.Terminator:
			return &Error{Kind: KindUnexpectedArg, Value: lex.FlagPrefix, Help: c.help}
		default:
			return &Error{Kind: KindUnexpectedArg, Value: tok.Text, Help: c.help}
		}
	}

	return nil
}

// captureBadFlag finds the earliest unclaimed option before breakpoint and
// returns it as spelled. A long option that is a near miss of a declared name
// fails with ErrSuggestArg instead.
func (c *Cli) captureBadFlag(breakpoint int) (string, bool, error) {
	tag, at, ok := c.index.FirstBefore(breakpoint)
	if !ok {
		return "", false, nil
	}

	err := c.prioritizeHelp()
	if err != nil {
		return "", false, err
	}

	tok, held := c.peek(at)
	if !held {
		panic(fmt.Sprintf("core: indexed option %s at slot %d was already claimed", tag, at))
	}

	switch tok.Kind { //nolint:exhaustive // only options are indexed
	case lex.Switch, lex.EmptySwitch:
	case lex.Flag:
		if word, ok := c.suggest(tag.Name, flags.Names(c.known)); ok {
			return "", false, &Error{
				Kind:       KindSuggestArg,
				Value:      tag.String(),
				Suggestion: lex.FlagPrefix + word,
				Help:       c.help,
			}
		}
	default:
		panic(fmt.Sprintf("core: %s token at slot %d is indexed as an option", tok.Kind, at))
	}

	return tag.String(), true, nil
}

// prioritizeSuggestion reports the first unclaimed long option that is a near
// miss of a declared name. Help requests suppress it.
func (c *Cli) prioritizeSuggestion() error {
	if c.askingForHelp {
		return nil
	}

	bank := flags.Names(c.known)

	for _, entry := range c.index.Entries() {
		tok, ok := c.peek(entry.Slots[0])
		if !ok || tok.Kind != lex.Flag {
			continue
		}

		if word, ok := c.suggest(entry.Tag.Name, bank); ok {
			return &Error{
				Kind:       KindSuggestArg,
				Value:      entry.Tag.String(),
				Suggestion: lex.FlagPrefix + word,
				Help:       c.help,
			}
		}
	}

	return nil
}

// terminator returns the slot of the unclaimed terminator, or -1.
func (c *Cli) terminator() int {
	for i := range c.slots {
		if tok, ok := c.peek(i); ok && tok.Kind == lex.Terminator {
			return i
		}
	}

	return -1
}
