package core

import (
	"slices"

	"github.com/toejough/argue/internal/flags"
	"github.com/toejough/argue/internal/help"
	"github.com/toejough/argue/internal/lex"
	"github.com/toejough/argue/internal/suggest"
)

// Cli is the argument engine for one command line. Every query claims the
// tokens it matches, so later queries and the final IsEmpty check only see
// what is left. A Cli is not safe for concurrent use.
type Cli struct {
	slots         []slot
	index         lex.Index
	known         []flags.Arg
	help          *help.Help
	askingForHelp bool
	opts          Options
}

// New lexes args, whose first element is the program name, into a fresh engine.
func New(args []string, opts Options) *Cli {
	tokens, index := lex.Lex(args)

	slots := make([]slot, len(tokens))
	for i, tok := range tokens {
		slots[i] = slot{tok: tok}
	}

	if opts.Suggest == nil {
		opts.Suggest = suggest.Closest
	}

	return &Cli{slots: slots, index: index, opts: opts}
}

// AskingForHelp reports whether the help flag has been raised.
func (c *Cli) AskingForHelp() bool {
	return c.askingForHelp
}

// DisableHelp removes the installed help. Errors raised afterwards no longer
// give way to a help request.
func (c *Cli) DisableHelp() {
	c.help = nil
}

// Help installs h and queries its flag right away, unless help was already
// asked for.
func (c *Cli) Help(h help.Help) error {
	if c.opts.HelpFlag.Long != "" {
		h = h.WithFlag(c.opts.HelpFlag)
	}

	c.help = &h

	if c.askingForHelp {
		return nil
	}

	raised, err := c.CheckFlag(h.Flag())
	if err != nil {
		return err
	}

	c.askingForHelp = raised

	return nil
}

// HelpFlag returns the flag that raises help on this engine when the
// options override it, otherwise flags.Help.
func (c *Cli) HelpFlag() flags.Flag {
	if c.opts.HelpFlag.Long != "" {
		return c.opts.HelpFlag
	}

	return flags.Help
}

// IsHelpEnabled reports whether help is installed.
func (c *Cli) IsHelpEnabled() bool {
	return c.help != nil
}

// Known returns the arguments declared so far, oldest first.
func (c *Cli) Known() []flags.Arg {
	return slices.Clone(c.known)
}

// Styles returns the styles help and errors should render with.
func (c *Cli) Styles() help.Styles {
	return c.opts.styles()
}

// claim empties slot i and returns the token it held.
func (c *Cli) claim(i int) lex.Token {
	c.slots[i].taken = true
	return c.slots[i].tok
}

func (c *Cli) declare(arg flags.Arg) {
	c.known = append(c.known, arg)
}

// fail blames e on the most recently declared argument, unless help was
// asked for, in which case the help outcome is returned instead.
func (c *Cli) fail(e *Error) error {
	err := c.prioritizeHelp()
	if err != nil {
		return err
	}

	e.Arg = c.popKnown()
	e.Help = c.help

	return e
}

// firstUnattached returns the slot of the first unclaimed bare word.
func (c *Cli) firstUnattached() (int, bool) {
	for i := range c.slots {
		if tok, ok := c.peek(i); ok && tok.Kind == lex.Unattached {
			return i, true
		}
	}

	return 0, false
}

// locations takes every occurrence of f, long and short, in command-line order.
func (c *Cli) locations(f flags.Flag) []int {
	locs := c.index.TakeFlag(f.Long)
	if f.HasShort() {
		locs = append(locs, c.index.TakeSwitch(f.Short)...)
	}

	slices.Sort(locs)

	return locs
}

// nextUnattached claims the next bare word. The terminator ends the search
// without being claimed.
func (c *Cli) nextUnattached() (string, bool) {
	for i := range c.slots {
		tok, ok := c.peek(i)
		if !ok {
			continue
		}

		switch tok.Kind { //nolint:exhaustive // only words and the terminator stop the scan
		case lex.Terminator:
			return "", false
		case lex.Unattached:
			return c.claim(i).TakeText(), true
		}
	}

	return "", false
}

func (c *Cli) peek(i int) (lex.Token, bool) {
	if i < 0 || i >= len(c.slots) || c.slots[i].taken {
		return lex.Token{}, false
	}

	return c.slots[i].tok, true
}

func (c *Cli) popKnown() flags.Arg {
	last := c.known[len(c.known)-1]
	c.known = c.known[:len(c.known)-1]

	return last
}

func (c *Cli) prioritizeHelp() error {
	if c.askingForHelp && c.help != nil {
		return &Error{Kind: KindHelp, Help: c.help}
	}

	return nil
}

// pullFlag claims the option token at each location along with the value
// behind it. An attached value is always taken; a bare word only when
// withBare is set.
func (c *Cli) pullFlag(locs []int, withBare bool) []occurrence {
	out := make([]occurrence, 0, len(locs))

	for _, i := range locs {
		c.claim(i)

		next, ok := c.peek(i + 1)

		switch {
		case ok && next.Kind == lex.Attached,
			ok && next.Kind == lex.Unattached && withBare:
			out = append(out, occurrence{value: c.claim(i + 1).TakeText(), ok: true})
		default:
			out = append(out, occurrence{})
		}
	}

	return out
}

// raise returns e with the installed help attached, unless help was asked
// for.
func (c *Cli) raise(e *Error) error {
	err := c.prioritizeHelp()
	if err != nil {
		return err
	}

	e.Help = c.help

	return e
}

// suggest asks the oracle for the closest word in bank. A zero threshold
// never consults it.
func (c *Cli) suggest(target string, bank []string) (string, bool) {
	if c.opts.Threshold <= 0 {
		return "", false
	}

	return c.opts.Suggest(target, bank, c.opts.Threshold)
}

// Options configures an engine.
type Options struct {
	// Threshold is the largest edit distance a suggestion may be from the
	// misspelled word. Zero turns suggestions off.
	Threshold suggest.Cost
	// Suggest is the oracle asked for near matches. Nil selects suggest.Closest.
	Suggest suggest.Func
	// Styles renders help and errors in Run. Nil selects help.DefaultStyles.
	Styles *help.Styles
	// HelpFlag, when its long name is set, raises every installed help in
	// place of the help's own flag.
	HelpFlag flags.Flag
}

func (o Options) styles() help.Styles {
	if o.Styles != nil {
		return *o.Styles
	}

	return help.DefaultStyles()
}

type occurrence struct {
	value string
	ok    bool
}

type slot struct {
	tok   lex.Token
	taken bool
}
