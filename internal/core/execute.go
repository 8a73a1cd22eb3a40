package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/toejough/argue/internal/help"
)

// ExecuteResult contains the output captured by Execute.
type ExecuteResult struct {
	Output    string
	ErrOutput string
}

// Execute parses args into cmd and runs it, capturing output instead of
// exiting. This is useful for testing. Args should include the program name
// as the first element.
func Execute(args []string, opts Options, cmd Command) (ExecuteResult, error) {
	env := NewExecuteEnv(args)
	err := RunWithEnv(env, opts, cmd)

	return ExecuteResult{Output: env.Output(), ErrOutput: env.ErrOutput()}, err
}

// Parse builds an engine over args and populates a T from it. Anything left
// unclaimed once T is populated fails the parse.
func Parse[T any, P interface {
	*T
	FromCli
}](args []string, opts Options,
) (*T, error) {
	c := New(args, opts)
	out := P(new(T))

	err := out.FromCli(c)
	if err != nil {
		return nil, err
	}

	err = c.IsEmpty()
	if err != nil {
		return nil, err
	}

	return (*T)(out), nil
}

// Run parses os.Args into cmd, runs it, and exits non-zero on failure.
func Run(opts Options, cmd Command) {
	env := OsEnv{}

	err := RunWithEnv(env, opts, cmd)
	if err != nil {
		var exitErr ExitError
		if errors.As(err, &exitErr) {
			env.Exit(exitErr.Code)
		} else {
			env.Exit(1)
		}
	}
}

// RunWithEnv parses the environment's arguments into cmd and runs it.
//
// A help request prints the help text to stdout and succeeds. Any other parse
// failure, and any failure of the command itself, is reported on stderr and
// returned as ExitError{Code: 1}.
func RunWithEnv(env RunEnv, opts Options, cmd Command) error {
	styles := opts.styles()

	c := New(env.Args(), opts)

	err := cmd.FromCli(c)
	if err == nil {
		err = c.IsEmpty()
	}

	if err != nil {
		return reportParseError(env, styles, err)
	}

	ctx := context.Background()

	if env.SupportsSignals() {
		var cancel context.CancelFunc

		ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer cancel()
	}

	err = cmd.Exec(ctx)
	if err != nil {
		fmt.Fprintf(env.Stderr(), "%s %v\n", styles.Error.Render("error:"), err)
		return ExitError{Code: 1}
	}

	return nil
}

// hint returns a one-line pointer at the fix for e, or "".
func hint(e *Error, styles help.Styles) string {
	switch e.Kind { //nolint:exhaustive // only some kinds have a fix to point at
	case KindSuggestArg, KindSuggestSubcommand:
		return "tip: a similar name exists: " + styles.Suggestion.Render(e.Suggestion)
	case KindOutOfContextArg:
		return fmt.Sprintf("tip: move %s after %s",
			styles.Suggestion.Render(e.Value), styles.Suggestion.Render(e.Suggestion))
	default:
		return ""
	}
}

func reportParseError(env RunEnv, styles help.Styles, err error) error {
	var cliErr *Error
	if !errors.As(err, &cliErr) {
		fmt.Fprintf(env.Stderr(), "%s %v\n", styles.Error.Render("error:"), err)
		return ExitError{Code: 1}
	}

	if cliErr.Kind == KindHelp {
		if cliErr.Help != nil {
			fmt.Fprintln(env.Stdout(), cliErr.Help.Text())
		}

		return nil
	}

	w := env.Stderr()

	fmt.Fprintf(w, "%s %v\n", styles.Error.Render("error:"), cliErr)

	if tip := hint(cliErr, styles); tip != "" {
		fmt.Fprintf(w, "\n%s\n", tip)
	}

	if cliErr.Help == nil {
		return ExitError{Code: 1}
	}

	if usage := cliErr.Help.Usage(); usage != "" {
		fmt.Fprintf(w, "\n%s\n", usage)
	}

	fmt.Fprintf(w, "\nFor more information, try %s.\n", styles.Flag.Render(cliErr.Help.Flag().String()))

	return ExitError{Code: 1}
}
