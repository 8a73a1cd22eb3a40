// Package argue resolves command-line arguments by query.
//
// A program describes what it accepts by asking an engine for it, one
// argument at a time. Each query claims the tokens it matches, so anything
// left over after the program has asked for everything it knows is an error:
//
//	type add struct {
//		lhs, rhs int
//		verbose  bool
//	}
//
//	func (a *add) FromCli(c *argue.Cli) error {
//		err := c.Help(argue.NewHelp("add <lhs> <rhs> [--verbose]").WithUsage(0, 0))
//		if err != nil {
//			return err
//		}
//
//		a.verbose, err = c.CheckFlag(argue.Flag{Long: "verbose", Short: 'v'})
//		if err != nil {
//			return err
//		}
//
//		a.lhs, err = argue.RequirePositional[int](c, argue.Positional{Name: "lhs"})
//		if err != nil {
//			return err
//		}
//
//		a.rhs, err = argue.RequirePositional[int](c, argue.Positional{Name: "rhs"})
//
//		return err
//	}
//
// Flags and options are matched wherever they appear, before or after
// positionals, in long (--verbose), short (-v) or bundled (-vx) form. Option
// values attach with "=" or follow as the next word. A bare "--" ends option
// parsing; CheckRemainder returns everything after it.
//
// Subcommands are structs of their own, selected with CheckCommand and
// MatchCommand. An undeclared option given before the subcommand word is
// reported as out of context, pointing the user at where it belongs.
//
// Misspellings within Options.Threshold edits of a known name are reported
// with a suggestion. The default threshold of zero turns suggestions off.
//
// Once help is installed with Cli.Help, a help flag anywhere on the line wins
// over every other error and is reported as ErrHelp carrying the help text.
// Run and Execute print it and succeed.
package argue
