package core

import (
	"context"
	"fmt"
	"slices"

	"github.com/toejough/argue/internal/flags"
)

// MatchCommand claims the next bare word and matches it against words.
//
// An option left unclaimed before the word was meant for the subcommand's own
// parser and fails with ErrOutOfContextArg. An unknown word fails with
// ErrSuggestSubcommand when the oracle finds a near match, otherwise with
// ErrUnknownSubcommand.
//
// MatchCommand panics when no bare word is left; reach it through
// CheckCommand.
func (c *Cli) MatchCommand(words []string) (string, error) {
	pos, ok := c.firstUnattached()
	if !ok {
		panic("core: MatchCommand called with no word left; call it from FromCli through CheckCommand")
	}

	word, _ := c.nextUnattached()

	stray, found, err := c.captureBadFlag(pos)
	if err != nil {
		return "", err
	}

	if found {
		return "", c.raise(&Error{Kind: KindOutOfContextArg, Value: stray, Suggestion: word})
	}

	if slices.Contains(words, word) {
		return word, nil
	}

	if suggestion, ok := c.suggest(word, words); ok {
		return "", c.raise(&Error{Kind: KindSuggestSubcommand, Value: word, Suggestion: suggestion})
	}

	err = c.prioritizeHelp()
	if err != nil {
		return "", err
	}

	if len(c.known) == 0 {
		panic("core: an unknown subcommand requires a declared positional")
	}

	p, isPositional := c.known[len(c.known)-1].(flags.Positional)
	if !isPositional {
		panic(fmt.Sprintf("core: an unknown subcommand requires a declared positional, last declared %s", c.known[len(c.known)-1]))
	}

	c.popKnown()

	return "", &Error{Kind: KindUnknownSubcommand, Arg: p, Value: word, Help: c.help}
}

// Command is a parsed argument group that can run.
type Command interface {
	FromCli
	Exec(ctx context.Context) error
}

// FromCli is implemented by pointer types that populate themselves from the
// engine. Declare flags first, then options, then positionals, and
// subcommands last.
type FromCli interface {
	FromCli(c *Cli) error
}

// CheckCommand populates a T through its FromCli method when a bare word is
// left to name a subcommand. It returns nil, without error, when none is.
// The FromCli method is expected to call MatchCommand first.
func CheckCommand[T any, P interface {
	*T
	FromCli
}](c *Cli, p flags.Positional,
) (*T, error) {
	c.declare(p)

	if _, ok := c.firstUnattached(); !ok {
		return nil, nil //nolint:nilnil // an absent subcommand is not an error
	}

	out := P(new(T))

	err := out.FromCli(c)
	if err != nil {
		return nil, err
	}

	return (*T)(out), nil
}
